// Package services contains the application services behind the CLI:
// authentication and session state (AuthService), link management
// (LinkService), and the SessionTerminator wired into the HTTP client.
package services
