// Package tokenstore persists the session token pair between client runs.
//
// Two implementations are provided:
//   - SQLiteStore keeps tokens in a local SQLite database whose schema is
//     applied with goose migrations. SetPair and Clear are transactional.
//   - MemoryStore keeps tokens in a mutex-guarded map. It is meant for tests
//     and throwaway sessions.
//
// Get returns an empty string and a nil error for an absent key.
package tokenstore
