package partnerrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.pg.DB, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *PartnerRepositoryIntegrationTestSuite) newPartner(email string, load int, status partner.Status, areas ...kernel.Area) *partner.Partner {
	set, err := kernel.NewAreaSet(areas...)
	suite.Require().NoError(err)
	shift, err := kernel.ParseShiftWindow("08:00", "16:30")
	suite.Require().NoError(err)
	metrics, err := partner.NewMetrics(4.7, 12, 1)
	suite.Require().NoError(err)

	p, err := partner.RestorePartner(kernel.NewUUID(), "Sam Ortiz", email, "+1 555 0101", status, load, set, shift, metrics)
	suite.Require().NoError(err)
	return p
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	p := suite.newPartner("sam@example.com", 2, partner.Active, kernel.Downtown, kernel.Eastside)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(p))
	suite.Equal("sam@example.com", got.Email())
	suite.Equal(2, got.CurrentLoad())
	suite.Equal(partner.Active, got.Status())
	suite.Equal([]string{"Downtown", "Eastside"}, got.Areas().Strings())
	suite.Equal("08:00-16:30", got.Shift().String())
	suite.Equal(p.Metrics(), got.Metrics())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPartner("dup@example.com", 0, partner.Active, kernel.Uptown)))

	err := suite.repository.Add(ctx, suite.newPartner("dup@example.com", 0, partner.Active, kernel.Midtown))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_PersistsZeroLoad() {
	ctx := context.Background()
	p := suite.newPartner("one@example.com", 1, partner.Active, kernel.Downtown)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.CompleteOrder())
	p.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Zero(got.CurrentLoad())
	suite.Equal(partner.Inactive, got.Status())
	suite.Equal(13, got.Metrics().CompletedOrders())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newPartner("ghost@example.com", 0, partner.Active, kernel.Downtown))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.newPartner("gone@example.com", 0, partner.Active, kernel.Downtown)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, p.ID()), errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetAllAvailable_SkipsInactiveAndFull() {
	ctx := context.Background()
	free := suite.newPartner("free@example.com", 0, partner.Active, kernel.Downtown)
	almost := suite.newPartner("almost@example.com", partner.Capacity-1, partner.Active, kernel.Downtown)
	full := suite.newPartner("full@example.com", partner.Capacity, partner.Active, kernel.Downtown)
	off := suite.newPartner("off@example.com", 0, partner.Inactive, kernel.Downtown)
	for _, p := range []*partner.Partner{free, almost, full, off} {
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	tx := suite.pg.DB.Begin()
	defer tx.Rollback()
	available, err := partnerrepo.NewGormPartnerRepository(tx, suite.tracker).GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(available, 2)
	ids := []kernel.UUID{available[0].ID(), available[1].ID()}
	suite.Contains(ids, free.ID())
	suite.Contains(ids, almost.ID())
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
