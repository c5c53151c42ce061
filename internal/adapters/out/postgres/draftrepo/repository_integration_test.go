package draftrepo_test

import (
	"context"
	"testing"
	"time"

	"errand/internal/adapters/out/postgres/draftrepo"
	"errand/internal/adapters/out/postgres/pgtest"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type DraftSessionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *draftrepo.GormDraftSessionRepository
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&draftrepo.SessionDTO{}))
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE draft_sessions").Error)
	suite.repository = draftrepo.NewGormDraftSessionRepository(suite.db)
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) TestAddGet_EmptySession() {
	ctx := context.Background()
	session := suite.newSession()

	suite.Require().NoError(suite.repository.Add(ctx, session))

	loaded, err := suite.repository.Get(ctx, session.ID())
	suite.Require().NoError(err)
	suite.True(loaded.BelongsTo(session.CustomerID()))
	suite.Empty(loaded.Contents().Items)
	suite.Nil(loaded.Contents().Dropoff)
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) TestUpdate_ReplacesContents() {
	ctx := context.Background()
	session := suite.newSession()
	suite.Require().NoError(suite.repository.Add(ctx, session))

	later := session.UpdatedAt().Add(time.Minute)
	session.Replace(draft.Contents{
		OrderType: "PURCHASE_DELIVER",
		Currency:  "SAR",
		Totals:    draft.Totals{Subtotal: decimal.RequireFromString("12.50"), Total: decimal.RequireFromString("20.25")},
		Pickup:    &draft.Point{Lat: 24.71, Lng: 46.67, Address: "Tamimi"},
		Dropoff:   &draft.Point{Lat: 24.77, Lng: 46.73},
		Notes:     "ring twice",
		Items:     []draft.Item{{Description: "eggs", Quantity: 2, Price: decimal.RequireFromString("6.25")}},
	}, later)
	suite.Require().NoError(suite.repository.Update(ctx, session))

	loaded, err := suite.repository.Get(ctx, session.ID())
	suite.Require().NoError(err)

	c := loaded.Contents()
	suite.Equal("PURCHASE_DELIVER", c.OrderType)
	suite.True(decimal.RequireFromString("20.25").Equal(c.Totals.Total))
	suite.Require().NotNil(c.Pickup)
	suite.Equal("Tamimi", c.Pickup.Address)
	suite.Require().NotNil(c.Dropoff)
	suite.InDelta(46.73, c.Dropoff.Lng, 1e-9)
	suite.Equal("ring twice", c.Notes)
	suite.Require().Len(c.Items, 1)
	suite.True(decimal.RequireFromString("6.25").Equal(c.Items[0].Price))
	suite.True(later.Equal(loaded.UpdatedAt()))
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	err := suite.repository.Update(context.Background(), suite.newSession())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	session := suite.newSession()
	suite.Require().NoError(suite.repository.Add(ctx, session))

	suite.Require().NoError(suite.repository.Delete(ctx, session.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, session.ID()))

	_, err := suite.repository.Get(ctx, session.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DraftSessionRepositoryIntegrationTestSuite) newSession() *draft.Session {
	session, err := draft.NewSession(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return session
}

func TestDraftSessionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DraftSessionRepositoryIntegrationTestSuite))
}
