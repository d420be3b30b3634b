// Package order defines the manufacturing-order domain model: the derived
// Status value object with its label, transition, and priority tables, the
// Milestone timestamps that drive it, and the read-time Snapshot the status
// engine computes from.
//
// The package deliberately contains data and tables, not inference: computing
// a status from a snapshot is the job of services.OrderStatusEngine.
package order
