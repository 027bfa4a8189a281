// Package cli provides the interactive myFlix command-line client.
//
// It wires configuration, the session store, the API client, and an
// interactive REPL. Typical flow: restore a persisted session (or prompt
// for credentials), list the movie catalog, and execute user commands
// against the numbered listing.
//
// Key features:
//   - Register / Login / Logout with a session that survives restarts
//   - Browse the catalog, show synopses, genre and director details
//   - Toggle and list favorite movies
//   - View, update, and delete the profile
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
