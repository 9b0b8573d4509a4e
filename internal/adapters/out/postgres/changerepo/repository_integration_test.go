package changerepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/changerepo"
	"orderflow/internal/core/domain/model/change"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormOrderChangeRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *changerepo.GormOrderChangeRepository
}

func (suite *GormOrderChangeRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&changerepo.OrderChangeDTO{})
	suite.Require().NoError(err)

	suite.repo = changerepo.NewGormOrderChangeRepository(db)
}

func (suite *GormOrderChangeRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderChangeRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_changes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderChangeRepositoryTestSuite) newChange(tenantID, orderID kernel.UUID, requestedAt time.Time) *change.OrderChange {
	aggregate, err := change.NewOrderChange(
		kernel.NewUUID(),
		tenantID,
		orderID,
		change.TypeCancel,
		"customer changed their mind",
		-4800,
		`{"status":"IN_PRODUCTION"}`,
		`{"status":"CANCELLED"}`,
		"user-1",
		requestedAt,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GormOrderChangeRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	requestedAt := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newChange(kernel.NewUUID(), kernel.NewUUID(), requestedAt)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID(), aggregate.TenantID())
	suite.Require().NoError(err)

	suite.Equal(change.TypeCancel, loaded.ChangeType())
	suite.Equal(change.StatusPending, loaded.Status())
	suite.Equal(-4800.0, loaded.DiffAmount())
	suite.Equal("customer changed their mind", loaded.Reason())
	suite.Equal("user-1", loaded.RequestedBy())
	suite.Equal(requestedAt, loaded.RequestedAt().UTC())
	suite.Empty(loaded.ApprovedBy())
	suite.Nil(loaded.ApprovedAt())
}

func (suite *GormOrderChangeRepositoryTestSuite) TestUpdate_PersistsDecision() {
	ctx := context.Background()
	aggregate := suite.newChange(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = aggregate.Approve("approver-7", time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID(), aggregate.TenantID())
	suite.Require().NoError(err)
	suite.Equal(change.StatusApproved, loaded.Status())
	suite.Equal("approver-7", loaded.ApprovedBy())
	suite.NotNil(loaded.ApprovedAt())
}

func (suite *GormOrderChangeRepositoryTestSuite) TestUpdate_MissingRow() {
	ctx := context.Background()
	aggregate := suite.newChange(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())

	err := suite.repo.Update(ctx, aggregate)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderChangeRepositoryTestSuite) TestGetAllPendingForOrder() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	base := time.Now().UTC()

	older := suite.newChange(tenantID, orderID, base.Add(-2*time.Hour))
	newer := suite.newChange(tenantID, orderID, base.Add(-time.Hour))
	decided := suite.newChange(tenantID, orderID, base.Add(-3*time.Hour))
	err := decided.Reject("approver-7", base)
	suite.Require().NoError(err)
	otherOrder := suite.newChange(tenantID, kernel.NewUUID(), base)

	for _, aggregate := range []*change.OrderChange{older, newer, decided, otherOrder} {
		err = suite.repo.Add(ctx, aggregate)
		suite.Require().NoError(err)
	}

	pending, err := suite.repo.GetAllPendingForOrder(ctx, orderID, tenantID)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID().IsEqual(older.ID()), "oldest pending change comes first")
	suite.True(pending[1].ID().IsEqual(newer.ID()))
}

func TestGormOrderChangeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderChangeRepositoryTestSuite))
}
