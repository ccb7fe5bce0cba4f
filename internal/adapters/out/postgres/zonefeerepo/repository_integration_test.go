package zonefeerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres/zonefeerepo"
	"dispatch/internal/core/domain/model/pricing"
)

type ZoneFeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *zonefeerepo.GormZoneFeeRepository
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&zonefeerepo.ZoneFeeDTO{}))
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE zone_fees").Error)
	suite.repository = zonefeerepo.NewGormZoneFeeRepository(suite.db)
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) upsert(zone string, fee float64) {
	entry, err := pricing.NewZoneFee(zone, fee)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Upsert(context.Background(), entry))
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) TestFeeForZone_CaseInsensitive() {
	suite.upsert("Habana Vieja", 3.50)

	fee, found, err := suite.repository.FeeForZone(context.Background(), "HABANA VIEJA")
	suite.Require().NoError(err)
	suite.True(found)
	suite.InDelta(3.50, fee, 0.001)
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) TestFeeForZone_MissIsNotAnError() {
	fee, found, err := suite.repository.FeeForZone(context.Background(), "Regla")
	suite.Require().NoError(err)
	suite.False(found)
	suite.Zero(fee)
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) TestUpsert_ReplacesExistingFee() {
	suite.upsert("Plaza", 5.00)
	suite.upsert("plaza", 6.00)

	fee, found, err := suite.repository.FeeForZone(context.Background(), "Plaza")
	suite.Require().NoError(err)
	suite.True(found)
	suite.InDelta(6.00, fee, 0.001)

	entries, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *ZoneFeeRepositoryIntegrationTestSuite) TestGetAll_SortedByZone() {
	suite.upsert("Vedado", 4.00)
	suite.upsert("Centro Habana", 3.00)

	entries, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("Centro Habana", entries[0].Zone())
	suite.Equal("Vedado", entries[1].Zone())
}

func TestZoneFeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneFeeRepositoryIntegrationTestSuite))
}
