// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transition checking,
// transactional persistence, and a ledger record for every accepted change.
package commands

import (
	"context"
	"errors"

	"manufacturing/internal/core/ports"
)

// ErrTransitionNotAllowed is returned when the transition validator rejects a
// requested status change. Inbound adapters map it to a conflict response.
var ErrTransitionNotAllowed = errors.New("transition is not allowed")

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the slice of the unit of work it actually uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InquiryRepoFactory provides access to the inquiry repository within a transaction.
	InquiryRepoFactory interface {
		InquiryRepository() ports.InquiryRepository
	}

	// LedgerStoreFactory provides access to the status-change store within a transaction.
	LedgerStoreFactory interface {
		StatusChangeStore() ports.StatusChangeStore
	}

	// OrderUoW manages transactions for order operations. Every order write
	// also appends to the ledger, so the store is always part of the slice.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		LedgerStoreFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InquiryUoW manages transactions for inquiry operations.
	InquiryUoW interface {
		TxManager
		InquiryRepoFactory
		LedgerStoreFactory
	}

	// InquiryUoWFactory creates new inquiry unit of work instances.
	InquiryUoWFactory interface {
		Create() InquiryUoW
	}
)
