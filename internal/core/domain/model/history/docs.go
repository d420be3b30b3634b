// Package history defines the append-only status-change ledger's data types:
// ChangeRecord entries, timeline and staleness projections, and query filters.
// The ledger behavior itself lives in services.StatusHistoryLedger; storage is
// behind ports.StatusChangeStore.
package history
