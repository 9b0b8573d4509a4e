package commands_test

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/installation"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/procurement"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedVersion *int64) error {
	args := m.Called(ctx, aggregate, expectedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingChildren(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderChangeRepository struct{ mock.Mock }

func (m *MockOrderChangeRepository) Add(ctx context.Context, aggregate *change.OrderChange) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderChangeRepository) Update(ctx context.Context, aggregate *change.OrderChange) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderChangeRepository) Get(ctx context.Context, id kernel.UUID, tenantID kernel.UUID) (*change.OrderChange, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*change.OrderChange), args.Error(1)
}

func (m *MockOrderChangeRepository) GetAllPendingForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*change.OrderChange, error) {
	args := m.Called(ctx, orderID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*change.OrderChange), args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, orderID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.PurchaseOrder), args.Error(1)
}

type MockInstallTaskRepository struct{ mock.Mock }

func (m *MockInstallTaskRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID, tenantID kernel.UUID) ([]*installation.InstallTask, error) {
	args := m.Called(ctx, orderID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*installation.InstallTask), args.Error(1)
}

type MockAuditTrail struct{ mock.Mock }

func (m *MockAuditTrail) Record(ctx context.Context, record ports.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockApprovalService struct{ mock.Mock }

func (m *MockApprovalService) Submit(ctx context.Context, submission ports.ApprovalSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) AuditTrail() ports.AuditTrail {
	args := m.Called()
	return args.Get(0).(ports.AuditTrail)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCancelUoW struct{ MockOrderUoW }

func (m *MockCancelUoW) OrderChangeRepository() ports.OrderChangeRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderChangeRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.CancelUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelUoW)
}

type MockRefreshUoW struct{ MockOrderUoW }

func (m *MockRefreshUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockRefreshUoW) InstallTaskRepository() ports.InstallTaskRepository {
	args := m.Called()
	return args.Get(0).(ports.InstallTaskRepository)
}

type MockRefreshUoWFactory struct{ mock.Mock }

func (m *MockRefreshUoWFactory) Create() commands.RefreshUoW {
	args := m.Called()
	return args.Get(0).(commands.RefreshUoW)
}
