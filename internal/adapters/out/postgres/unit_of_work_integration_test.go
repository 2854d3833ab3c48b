package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "tracking/internal/adapters/out/postgres"
	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and migrates the journal schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates the journal before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE event_journal").Error)
}

// TearDownSuite stops the container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.JournalRepository())
	suite.NotNil(uow2.JournalRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsBatch() {
	ctx := context.Background()
	uow := suite.factory.Create()
	entries := []journal.Entry{
		createTestEntry(suite, "ABC123", "1690000000000,ABC123,delivered"),
		createTestEntry(suite, "ABC123", "1690000000001,ABC123,lost"),
	}

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JournalRepository().AddBatch(ctx, entries))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(2), suite.countEntries("ABC123"))

	tracked, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Len(tracked.Written(), 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsBatch() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.JournalRepository().AddBatch(ctx, []journal.Entry{
		createTestEntry(suite, "XYZ999", "1690000000000,XYZ999,canceled"),
	}))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.countEntries("XYZ999"))

	tracked, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Empty(tracked.Written())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.JournalRepository().AddBatch(ctx, []journal.Entry{
		createTestEntry(suite, "A", "1,A,delivered"),
	}))
	suite.Require().NoError(uow2.JournalRepository().AddBatch(ctx, []journal.Entry{
		createTestEntry(suite, "B", "1,B,delivered"),
	}))

	suite.Zero(suite.countEntries("B"), "Uncommitted rows of UOW2 must not be visible outside it")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	suite.Equal(int64(1), suite.countEntries("A"))
	suite.Zero(suite.countEntries("B"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.JournalRepository().AddBatch(ctx, []journal.Entry{
		createTestEntry(suite, "C", "1,C,lost"),
	}))

	suite.Equal(int64(1), suite.countEntries("C"))
}

func (suite *UnitOfWorkIntegrationTestSuite) countEntries(shipmentID string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Table("event_journal").Where("shipment_id = ?", shipmentID).Count(&count).Error)
	return count
}

func createTestEntry(suite *UnitOfWorkIntegrationTestSuite, id, raw string) journal.Entry {
	rec, err := shipment.ParseRecord(raw)
	suite.Require().NoError(err)
	suite.Require().Equal(id, rec.ShipmentID())
	op, err := shipment.ParseOperation(rec.Tag())
	suite.Require().NoError(err)
	entry, err := journal.NewEntry(op, rec, time.Now())
	suite.Require().NoError(err)
	return entry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
