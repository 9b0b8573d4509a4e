// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction and hands out repositories
// bound to it, so every write a command makes lands in the same transaction
// and commits or rolls back as a whole.
package postgres

import (
	"context"

	"orderflow/internal/adapters/out/postgres/auditrepo"
	"orderflow/internal/adapters/out/postgres/changerepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/porepo"
	"orderflow/internal/adapters/out/postgres/taskrepo"
	"orderflow/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection. Every business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// from it run on the transaction while one is open and on the plain
// connection otherwise.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin with one already open is a no-op
// rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the open transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// OrderChangeRepository returns a change request repository bound to the
// current transaction.
func (uow *GormUnitOfWork) OrderChangeRepository() ports.OrderChangeRepository {
	return changerepo.NewGormOrderChangeRepository(uow.conn())
}

// PurchaseOrderRepository returns a purchase order reader bound to the
// current transaction.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return porepo.NewGormPurchaseOrderRepository(uow.conn())
}

// InstallTaskRepository returns an install task reader bound to the current
// transaction.
func (uow *GormUnitOfWork) InstallTaskRepository() ports.InstallTaskRepository {
	return taskrepo.NewGormInstallTaskRepository(uow.conn())
}

// AuditTrail returns an audit writer bound to the current transaction, so
// audit rows commit and roll back with the mutation they describe.
func (uow *GormUnitOfWork) AuditTrail() ports.AuditTrail {
	return auditrepo.NewGormAuditTrail(uow.conn())
}
