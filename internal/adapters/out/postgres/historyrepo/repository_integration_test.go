package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"manufacturing/internal/adapters/out/postgres/historyrepo"
	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StatusChangeStoreIntegrationTestSuite provides integration tests for the
// insert-only status-change store using PostgreSQL containers.
type StatusChangeStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *historyrepo.GormStatusChangeStore
}

func (suite *StatusChangeStoreIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&historyrepo.ChangeRecordDTO{}))
}

func (suite *StatusChangeStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE status_changes").Error)
	suite.store = historyrepo.NewGormStatusChangeStore(suite.db)
}

func (suite *StatusChangeStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StatusChangeStoreIntegrationTestSuite) newRecord(
	entityID kernel.UUID, toStatus string, changedAt time.Time,
) history.ChangeRecord {
	return history.ChangeRecord{
		ID:         kernel.NewUUID(),
		EntityType: history.EntityTypeOrder,
		EntityID:   entityID,
		FromStatus: "requested",
		ToStatus:   toStatus,
		ChangedAt:  changedAt,
		ChangedBy:  "planner",
	}
}

func (suite *StatusChangeStoreIntegrationTestSuite) TestAppendAndListByEntity() {
	ctx := context.Background()
	entityID := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// Appended out of order; ListByEntity must sort ascending.
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(entityID, "confirmed", base.Add(2*time.Hour))))
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(entityID, "quoted", base)))
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(kernel.NewUUID(), "quoted", base)))

	records, err := suite.store.ListByEntity(ctx, history.EntityTypeOrder, entityID)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("quoted", records[0].ToStatus)
	suite.Equal("confirmed", records[1].ToStatus)
}

func (suite *StatusChangeStoreIntegrationTestSuite) TestAppend_RoundTripsMetadata() {
	ctx := context.Background()
	entityID := kernel.NewUUID()

	record := suite.newRecord(entityID, "quoted", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	record.Reason = "initial quotation issued"
	record.Metadata = map[string]string{"quotation_id": kernel.NewUUID().String()}

	suite.Require().NoError(suite.store.Append(ctx, record))

	records, err := suite.store.ListByEntity(ctx, history.EntityTypeOrder, entityID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(record.Reason, records[0].Reason)
	suite.Equal(record.Metadata, records[0].Metadata)
}

func (suite *StatusChangeStoreIntegrationTestSuite) TestQuery_FiltersAndPaginates() {
	ctx := context.Background()
	entityID := kernel.NewUUID()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := range 5 {
		record := suite.newRecord(entityID, "quoted", base.Add(time.Duration(i)*time.Hour))
		suite.Require().NoError(suite.store.Append(ctx, record))
	}
	other := suite.newRecord(kernel.NewUUID(), "quoted", base)
	other.EntityType = history.EntityTypeInquiry
	suite.Require().NoError(suite.store.Append(ctx, other))

	suite.Run("descending with pagination", func() {
		page1, err := suite.store.Query(ctx, history.Filter{
			EntityType: history.EntityTypeOrder, Page: 1, Limit: 2,
		})
		suite.Require().NoError(err)
		suite.Require().Len(page1, 2)
		suite.True(page1[0].ChangedAt.After(page1[1].ChangedAt))

		page3, err := suite.store.Query(ctx, history.Filter{
			EntityType: history.EntityTypeOrder, Page: 3, Limit: 2,
		})
		suite.Require().NoError(err)
		suite.Len(page3, 1)
	})

	suite.Run("entity filter", func() {
		records, err := suite.store.Query(ctx, history.Filter{EntityID: &entityID})
		suite.Require().NoError(err)
		suite.Len(records, 5)
	})

	suite.Run("time window", func() {
		from := base.Add(time.Hour)
		to := base.Add(3 * time.Hour)
		records, err := suite.store.Query(ctx, history.Filter{
			EntityType: history.EntityTypeOrder, From: &from, To: &to,
		})
		suite.Require().NoError(err)
		suite.Len(records, 3)
	})
}

func (suite *StatusChangeStoreIntegrationTestSuite) TestListByEntityType_GroupsPerEntityRuns() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first, second := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(first, "quoted", base)))
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(second, "quoted", base.Add(time.Minute))))
	suite.Require().NoError(suite.store.Append(ctx, suite.newRecord(first, "confirmed", base.Add(time.Hour))))

	records, err := suite.store.ListByEntityType(ctx, history.EntityTypeOrder)

	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	// Each entity's records must be contiguous and internally ascending.
	for i := 1; i < len(records); i++ {
		if records[i].EntityID.IsEqual(records[i-1].EntityID) {
			suite.True(records[i].ChangedAt.After(records[i-1].ChangedAt))
		}
	}
}

func TestStatusChangeStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatusChangeStoreIntegrationTestSuite))
}
