// Package cli provides the interactive cardkeeper command-line client.
//
// It wires configuration, the configured key-value store and the card
// provider, then runs a small REPL that drives the provider the way the
// Cards and Add Card screens of a wallet app would:
//
//   - list (l)         show saved cards, newest first
//   - add              prompt for a new card and validate it
//   - delete [id]      remove a card
//   - help, exit, quit
//
// The provider's persistence loop runs next to the REPL; on exit every
// pending change is flushed before the store is closed.
package cli
