// Package cli provides the interactive enrollment shell.
//
// It wires configuration, the local SQLite-backed profile store and the
// user service into a REPL. Typical flow: register or log in, then list,
// edit or delete profiles; the active session survives restarts.
//
// Key commands:
//   - register / login / logout / whoami
//   - list stored profiles
//   - edit the active profile (unchanged fields keep their value)
//   - delete a profile by email
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits.
package cli
