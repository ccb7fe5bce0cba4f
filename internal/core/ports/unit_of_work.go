package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, ensuring
// isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly: Begin, repository
// operations, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back an
	// already committed unit of work is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// ZoneFeeRepository returns a ZoneFeeRepository bound to the current
	// transaction.
	ZoneFeeRepository() ZoneFeeRepository
}
