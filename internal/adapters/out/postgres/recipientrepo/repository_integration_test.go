package recipientrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RecipientRepositoryIntegrationTestSuite verifies recipient persistence,
// in particular nullable coordinates, against a real PostgreSQL instance.
type RecipientRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *recipientrepo.GormRecipientRepository
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&recipientrepo.RecipientDTO{}))
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE recipients").Error)
	suite.repository = recipientrepo.NewGormRecipientRepository(suite.db)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RecipientRepositoryIntegrationTestSuite) newRecipient(location *kernel.GeoPoint) *recipient.Recipient {
	aggregate, err := recipient.NewRecipient(
		kernel.NewUUID(),
		"João Lima",
		recipient.Address{
			Street: "Avenida Paulista",
			Number: "1578",
			City:   "São Paulo",
			State:  "SP",
			CEP:    "01310-200",
		},
		"+55 11 91234-5678",
		"joao@example.com",
		location,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAddAndGet_WithLocation() {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(-23.55052, -46.633308)
	suite.Require().NoError(err)

	aggregate := suite.newRecipient(&location)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(aggregate.IsEqual(loaded))
	suite.Equal("João Lima", loaded.Name())
	suite.Equal("01310200", loaded.Address().CEP)
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(-23.55052, loaded.Location().Latitude(), 1e-9)
	suite.InDelta(-46.633308, loaded.Location().Longitude(), 1e-9)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAddAndGet_WithoutLocation() {
	ctx := context.Background()

	aggregate := suite.newRecipient(nil)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Location())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_ClearingLocationPersists() {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(-23.55052, -46.633308)
	suite.Require().NoError(err)

	aggregate := suite.newRecipient(&location)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeLocation(nil))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.Location())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	aggregate := suite.newRecipient(nil)

	err := suite.repository.Update(context.Background(), aggregate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestDelete_RemovesRecipient() {
	ctx := context.Background()

	aggregate := suite.newRecipient(nil)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRecipientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientRepositoryIntegrationTestSuite))
}
