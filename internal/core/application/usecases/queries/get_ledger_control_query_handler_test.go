package queries_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"trackledger/internal/adapters/out/postgres/controlrepo"
	"trackledger/internal/adapters/out/postgres/deliveryrepo"
	"trackledger/internal/adapters/out/postgres/rolerepo"
	"trackledger/internal/core/application/usecases/queries"
	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ControlQueriesTestSuite exercises the administrative and access read models.
type ControlQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	controlRepo  *controlrepo.GormControlRepository
	roleRepo     *rolerepo.GormRoleAssignmentRepository
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *ControlQueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&controlrepo.LedgerControlDTO{},
		&rolerepo.RoleAssignmentDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)

	suite.controlRepo = controlrepo.NewGormControlRepository(db, &mockAggregateTracker{})
	suite.roleRepo = rolerepo.NewGormRoleAssignmentRepository(db, &mockAggregateTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *ControlQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ControlQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ledger_controls, role_assignments, deliveries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ControlQueriesTestSuite) TestGetLedgerControl_BeforeBootstrap_ReturnsNotFound() {
	handler := queries.NewGetLedgerControlQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.NewGetLedgerControlQuery())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ControlQueriesTestSuite) TestGetLedgerControl_ReturnsOwnerAndPauseFlag() {
	ctx := context.Background()
	owner := suite.bootstrap()

	handler := queries.NewGetLedgerControlQueryHandler(suite.db)

	state, err := handler.Handle(ctx, queries.NewGetLedgerControlQuery())
	suite.Require().NoError(err)
	suite.Require().NotNil(state)
	suite.True(state.Owner.IsEqual(owner))
	suite.False(state.Paused)

	ctrl, err := suite.controlRepo.Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(ctrl.SetPaused(owner, true))
	suite.Require().NoError(suite.controlRepo.Update(ctx, ctrl))

	state, err = handler.Handle(ctx, queries.NewGetLedgerControlQuery())
	suite.Require().NoError(err)
	suite.True(state.Paused)
}

func (suite *ControlQueriesTestSuite) TestGetOracles_EmptyBeforeBootstrap() {
	handler := queries.NewGetOraclesQueryHandler(suite.db)

	oracles, err := handler.Handle(context.Background(), queries.NewGetOraclesQuery())
	suite.Require().NoError(err)
	suite.NotNil(oracles)
	suite.Empty(oracles)
}

func (suite *ControlQueriesTestSuite) TestGetOracles_ListsRegisteredIdentities() {
	ctx := context.Background()
	owner := suite.bootstrap()

	oracle1 := kernel.NewUUID()
	oracle2 := kernel.NewUUID()

	ctrl, err := suite.controlRepo.Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(ctrl.AddOracle(owner, oracle1))
	suite.Require().NoError(ctrl.AddOracle(owner, oracle2))
	suite.Require().NoError(suite.controlRepo.Update(ctx, ctrl))

	handler := queries.NewGetOraclesQueryHandler(suite.db)

	oracles, err := handler.Handle(ctx, queries.NewGetOraclesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(oracles, 2)
	suite.True(oracles[0].IsEqual(oracle1))
	suite.True(oracles[1].IsEqual(oracle2))
}

func (suite *ControlQueriesTestSuite) TestHasRole_OwnerHoldsEveryRole() {
	ctx := context.Background()
	owner := suite.bootstrap()

	handler := queries.NewHasRoleQueryHandler(suite.db)

	for _, role := range []access.Role{
		access.RoleOperator, access.RoleOracle, access.RoleAdmin,
		access.RoleSupplier, access.RoleRecipient,
	} {
		query, err := queries.NewHasRoleQuery(owner, kernel.NewUUID(), role)
		suite.Require().NoError(err)

		has, err := handler.Handle(ctx, query)
		suite.Require().NoError(err)
		suite.True(has, "owner should hold role %s", role)
	}
}

func (suite *ControlQueriesTestSuite) TestHasRole_ChecksAssignmentMembership() {
	ctx := context.Background()
	suite.bootstrap()

	user := kernel.NewUUID()
	deliveryID := kernel.NewUUID()

	assignment, err := access.NewRoleAssignment(user, deliveryID, access.RoleOperator, access.RoleSupplier)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.roleRepo.Add(ctx, assignment))

	handler := queries.NewHasRoleQueryHandler(suite.db)

	query, err := queries.NewHasRoleQuery(user, deliveryID, access.RoleOperator)
	suite.Require().NoError(err)
	has, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(has)

	query, err = queries.NewHasRoleQuery(user, deliveryID, access.RoleAdmin)
	suite.Require().NoError(err)
	has, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(has)
}

func (suite *ControlQueriesTestSuite) TestHasRole_UnknownUser_ReturnsFalse() {
	suite.bootstrap()

	handler := queries.NewHasRoleQueryHandler(suite.db)

	query, err := queries.NewHasRoleQuery(kernel.NewUUID(), kernel.NewUUID(), access.RoleOracle)
	suite.Require().NoError(err)

	has, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.False(has)
}

func (suite *ControlQueriesTestSuite) TestGetOverdueDeliveries_SortsMostOverdueFirst() {
	ctx := context.Background()

	later := suite.seedDelivery(ctx, 900)
	earlier := suite.seedDelivery(ctx, 400)
	suite.seedDelivery(ctx, 5000)

	done := suite.seedDelivery(ctx, 300)
	suite.Require().NoError(done.Fail("abandoned"))
	suite.Require().NoError(suite.deliveryRepo.Update(ctx, done))

	handler := queries.NewGetOverdueDeliveriesQueryHandler(suite.db)

	ids, err := handler.Handle(ctx, queries.NewGetOverdueDeliveriesQuery(1000))
	suite.Require().NoError(err)
	suite.Require().Len(ids, 2)
	suite.True(ids[0].IsEqual(earlier.ID()))
	suite.True(ids[1].IsEqual(later.ID()))
}

func (suite *ControlQueriesTestSuite) bootstrap() kernel.UUID {
	owner := kernel.NewUUID()
	suite.Require().NoError(suite.controlRepo.Init(context.Background(), owner))
	return owner
}

func (suite *ControlQueriesTestSuite) seedDelivery(ctx context.Context, expectedArrival uint64) *delivery.Delivery {
	fp, err := kernel.FingerprintFromBytes(bytes.Repeat([]byte{0x22}, kernel.FingerprintLength))
	suite.Require().NoError(err)

	record, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		expectedArrival, fp, 100)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.deliveryRepo.Add(ctx, record))
	return record
}

func TestControlQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ControlQueriesTestSuite))
}
