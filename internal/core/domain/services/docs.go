// Package services contains the derived-status subsystem: the order and
// inquiry status engines, the transition validator, the status-history
// ledger, and the batch consistency checker.
//
// Engine functions are pure: they perform no I/O and hold no shared mutable
// state, so they are safe to call concurrently. The ledger is the one stateful
// component; its storage lives behind ports.StatusChangeStore and is injected
// through the constructor, never held as package-level state.
package services
