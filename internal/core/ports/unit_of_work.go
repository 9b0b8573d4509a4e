package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// OrderChangeRepository returns an OrderChangeRepository instance bound to the current transaction.
	OrderChangeRepository() OrderChangeRepository

	// PurchaseOrderRepository returns a PurchaseOrderRepository instance bound to the current transaction.
	PurchaseOrderRepository() PurchaseOrderRepository

	// InstallTaskRepository returns an InstallTaskRepository instance bound to the current transaction.
	InstallTaskRepository() InstallTaskRepository

	// AuditTrail returns an AuditTrail instance bound to the current transaction,
	// so audit rows commit and roll back together with the mutation they describe.
	AuditTrail() AuditTrail
}
