// Package cli provides the interactive Drop Logistics command-line client.
//
// It wires configuration, local storage, the client stores and an
// interactive REPL that works online (tracking server reachable) and
// offline (built-in catalog). Typical flow: restore the saved session and
// language, start a background connectivity watcher, and execute user
// commands.
//
// Key features:
//   - Register / Login / Logout, profile view and edit
//   - Company search, ranking and details, favorites and view history
//   - Delivery cost calculator and currency converter
//   - Shipment tracking and the user's shipment list
//   - Reviews, language switching, cache and data clearing
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
