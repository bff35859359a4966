package settingsrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/settingsrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SettingsRepositoryIntegrationTestSuite provides integration tests for
// SettingsRepository using PostgreSQL containers.
type SettingsRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *settingsrepo.GormSettingsRepository
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&settingsrepo.SettingDTO{}))
}

func (suite *SettingsRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE settings").Error)
	suite.repository = settingsrepo.NewGormSettingsRepository(suite.db)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestGet_MissingKey_ReturnsNilWithoutError() {
	value, err := suite.repository.Get(context.Background(), "never-set")
	suite.Require().NoError(err)
	suite.Nil(value)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestSet_ThenGet_RoundTripsDocument() {
	ctx := context.Background()
	doc := map[string]any{"questions": []any{"fuel", "odometer"}, "version": float64(2)}

	stored, err := suite.repository.Set(ctx, "start_form", doc)
	suite.Require().NoError(err)
	suite.Equal(doc, stored)

	value, err := suite.repository.Get(ctx, "start_form")
	suite.Require().NoError(err)
	suite.Equal(doc, value)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestSet_ExistingKey_ReplacesWholeValue() {
	ctx := context.Background()

	_, err := suite.repository.Set(ctx, "threshold", map[string]any{"hours": float64(4)})
	suite.Require().NoError(err)

	stored, err := suite.repository.Set(ctx, "threshold", float64(8))
	suite.Require().NoError(err)
	suite.Equal(float64(8), stored)

	value, err := suite.repository.Get(ctx, "threshold")
	suite.Require().NoError(err)
	suite.Equal(float64(8), value)
}

func (suite *SettingsRepositoryIntegrationTestSuite) TestSet_NullValue_IsStoredAndReadable() {
	ctx := context.Background()

	stored, err := suite.repository.Set(ctx, "banner", nil)
	suite.Require().NoError(err)
	suite.Nil(stored)

	// A key set to null reads the same as a missing key.
	value, err := suite.repository.Get(ctx, "banner")
	suite.Require().NoError(err)
	suite.Nil(value)
}

func TestSettingsRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryIntegrationTestSuite))
}
