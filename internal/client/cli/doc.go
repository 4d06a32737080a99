// Package cli provides the interactive gadgetkeeper command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL. Typical flow: restore a cached session if one is still
// valid, ping the server, then execute user commands until exit.
//
// Key features:
//   - Sign up / Sign in / Sign out (session cached in SQLite)
//   - List gadgets, optionally filtered by status
//   - Show / Add / Update a gadget
//   - Decommission and self-destruct a gadget
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
