// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderChangeRepoFactory provides access to the change request repository within a transaction.
	OrderChangeRepoFactory interface {
		OrderChangeRepository() ports.OrderChangeRepository
	}

	// ChildRepoFactory provides read access to the child subsystems' records
	// within a transaction.
	ChildRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
		InstallTaskRepository() ports.InstallTaskRepository
	}

	// AuditFactory provides the transaction-bound audit trail, so audit rows
	// commit and roll back together with the mutation they describe.
	AuditFactory interface {
		AuditTrail() ports.AuditTrail
	}

	// OrderUoW manages transactions for order-only mutations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CancelUoW manages transactions spanning the order and its change
	// requests, used by the cancellation request flow.
	CancelUoW interface {
		TxManager
		OrderRepoFactory
		OrderChangeRepoFactory
		AuditFactory
	}

	// CancelUoWFactory creates new cancellation unit of work instances.
	CancelUoWFactory interface {
		Create() CancelUoW
	}

	// RefreshUoW manages transactions for status synchronization, which reads
	// the child subsystems and conditionally writes the order.
	RefreshUoW interface {
		TxManager
		OrderRepoFactory
		ChildRepoFactory
		AuditFactory
	}

	// RefreshUoWFactory creates new refresh unit of work instances.
	RefreshUoWFactory interface {
		Create() RefreshUoW
	}
)
