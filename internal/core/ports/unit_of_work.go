package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping concurrent
// operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business-transaction boundary. A milestone stamp and its
// ledger record must land in the same transaction; repositories obtained from
// a unit of work are bound to the transaction started by Begin.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling Begin on an instance that
	// already has one is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the transaction.
	OrderRepository() OrderRepository

	// InquiryRepository returns an inquiry repository bound to the transaction.
	InquiryRepository() InquiryRepository

	// StatusChangeStore returns a ledger store bound to the transaction.
	StatusChangeStore() StatusChangeStore
}
