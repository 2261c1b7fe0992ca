// Package cli provides the interactive shortener command-line client.
//
// App wraps the auth and link services in a small REPL. A stored token pair
// from a previous run counts as logged in. When the HTTP client ends the
// session, SessionEnded flips the App back to the logged-out command set.
//
// Commands:
//   - register, login, logout
//   - list | l, add, edit, delete, open
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
