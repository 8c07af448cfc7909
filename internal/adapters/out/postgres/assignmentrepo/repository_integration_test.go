package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.pg.DB, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAppend_PersistsSuccessAndFailure() {
	ctx := context.Background()
	orderCreated := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	ranAt := orderCreated.Add(1500 * time.Millisecond)

	ok, err := assignment.NewSuccess(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), ranAt, orderCreated)
	suite.Require().NoError(err)
	failed, err := assignment.NewFailure(kernel.NewUUID(), kernel.NewUUID(), assignment.NoPartnerOnShift, ranAt, orderCreated)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", ok.ID(), ok).Once()
	suite.tracker.On("TrackAggregate", failed.ID(), failed).Once()

	suite.Require().NoError(suite.repository.Append(ctx, ok, failed))
	suite.tracker.AssertExpectations(suite.T())

	var rows []assignmentrepo.AssignmentDTO
	suite.Require().NoError(suite.pg.DB.Order("status DESC").Find(&rows).Error)
	suite.Require().Len(rows, 2)

	gotOK, err := assignmentrepo.ToDomain(rows[0])
	suite.Require().NoError(err)
	suite.True(gotOK.IsSuccess())
	suite.True(gotOK.Partner().IsEqual(*ok.Partner()))
	suite.Equal(1500*time.Millisecond, gotOK.Latency())
	suite.True(ranAt.Equal(gotOK.Timestamp()))

	gotFailed, err := assignmentrepo.ToDomain(rows[1])
	suite.Require().NoError(err)
	suite.False(gotFailed.IsSuccess())
	suite.Nil(gotFailed.Partner())
	suite.Equal(assignment.NoPartnerOnShift, gotFailed.Reason())
	suite.Equal("NoPartnerOnShift", rows[1].Reason)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAppend_Nothing_IsNoop() {
	suite.Require().NoError(suite.repository.Append(context.Background()))
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAppend_NilRecord_ReturnsError() {
	suite.Require().Error(suite.repository.Append(context.Background(), nil))

	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&assignmentrepo.AssignmentDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
