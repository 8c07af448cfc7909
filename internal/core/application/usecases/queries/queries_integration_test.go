package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var day = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database

	alex, blake, casey *partner.Partner
	early, midday, late *order.Order
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

// SetupTest seeds three partners, three orders and two assignment records:
//   - alex: active, Downtown+Midtown, load 1, rating 4.0
//   - blake: inactive, Midtown+Uptown, rating 5.0
//   - casey: active and full, Midtown+Eastside, rating 4.5
//   - early (Downtown, 08:00 on day) assigned to alex; midday (Midtown, 09:00 on day) and
//     late (Downtown, next day) pending
func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	suite.alex = suite.newPartner("Alex Kim", partner.Active, 1, 4.0, kernel.Downtown, kernel.Midtown)
	suite.blake = suite.newPartner("Blake Ruiz", partner.Inactive, 0, 5.0, kernel.Midtown, kernel.Uptown)
	suite.casey = suite.newPartner("Casey Fox", partner.Active, partner.Capacity, 4.5, kernel.Midtown, kernel.Eastside)

	suite.early = suite.newOrder("ORD-1", kernel.Downtown, day.Add(8*time.Hour))
	suite.midday = suite.newOrder("ORD-2", kernel.Midtown, day.Add(9*time.Hour))
	suite.late = suite.newOrder("ORD-3", kernel.Downtown, day.Add(34*time.Hour))
	suite.Require().NoError(suite.early.Assign(suite.alex.ID(), day.Add(8*time.Hour+5*time.Second)))

	success, err := assignment.NewSuccess(kernel.NewUUID(), suite.early.ID(), suite.alex.ID(),
		day.Add(8*time.Hour+5*time.Second), suite.early.CreatedAt())
	suite.Require().NoError(err)
	failure, err := assignment.NewFailure(kernel.NewUUID(), suite.midday.ID(), assignment.NoPartnerOnShift,
		day.Add(9*time.Hour+time.Minute), suite.midday.CreatedAt())
	suite.Require().NoError(err)

	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.pg.DB).CreateGorm()
	suite.Require().NoError(uow.Begin(ctx))
	for _, p := range []*partner.Partner{suite.alex, suite.blake, suite.casey} {
		suite.Require().NoError(uow.PartnerRepository().Add(ctx, p))
	}
	for _, o := range []*order.Order{suite.early, suite.midday, suite.late} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	suite.Require().NoError(uow.AssignmentRepository().Append(ctx, success, failure))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) newPartner(
	name string,
	status partner.Status,
	load int,
	rating float64,
	areas ...kernel.Area,
) *partner.Partner {
	set, err := kernel.NewAreaSet(areas...)
	suite.Require().NoError(err)
	shift, err := kernel.ParseShiftWindow("09:00", "17:00")
	suite.Require().NoError(err)
	metrics, err := partner.NewMetrics(rating, 3, 0)
	suite.Require().NoError(err)

	p, err := partner.RestorePartner(kernel.NewUUID(), name, kernel.NewUUID().String()+"@example.com",
		"+1 555 0101", status, load, set, shift, metrics)
	suite.Require().NoError(err)
	return p
}

func (suite *QueriesIntegrationTestSuite) newOrder(number string, area kernel.Area, createdAt time.Time) *order.Order {
	customer, err := order.NewCustomer("Ann Lee", "+1 555 0100", "12 Main St")
	suite.Require().NoError(err)
	item, err := order.NewItem("Pizza", 2, decimal.RequireFromString("12.50"))
	suite.Require().NoError(err)
	at, err := kernel.ParseTimeOfDay("14:00")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, customer, area, []order.Item{item}, at, createdAt)
	suite.Require().NoError(err)
	return o
}

func numbers(views []queries.OrderView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Number)
	}
	return out
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_NoFilters_NewestFirst() {
	query, err := queries.NewGetOrdersQuery(nil, nil, "")
	suite.Require().NoError(err)

	got, err := queries.NewGetOrdersQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]string{"ORD-3", "ORD-2", "ORD-1"}, numbers(got))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_Filters() {
	handler := queries.NewGetOrdersQueryHandler(suite.pg.DB)
	ctx := context.Background()

	byStatus, err := queries.NewGetOrdersQuery([]string{"pending"}, nil, "")
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, byStatus)
	suite.Require().NoError(err)
	suite.Equal([]string{"ORD-3", "ORD-2"}, numbers(got))

	byAreaAndDay, err := queries.NewGetOrdersQuery(nil, []string{"downtown"}, "2025-03-14")
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, byAreaAndDay)
	suite.Require().NoError(err)
	suite.Require().Equal([]string{"ORD-1"}, numbers(got))
	suite.Equal("assigned", got[0].Status)
	suite.Require().NotNil(got[0].PartnerID)
	suite.True(got[0].PartnerID.IsEqual(suite.alex.ID()))
	suite.True(decimal.RequireFromString("25").Equal(got[0].TotalAmount))
	suite.Require().Len(got[0].Items, 1)
	suite.Equal("Pizza", got[0].Items[0].Name)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	handler := queries.NewGetOrderQueryHandler(suite.pg.DB)

	query, err := queries.NewGetOrderQuery(suite.midday.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("ORD-2", got.Number)
	suite.Equal("Midtown", got.Area)
	suite.Equal("14:00", got.ScheduledFor)
	suite.Nil(got.PartnerID)

	missing, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetPartners_ListsByNameWithSummary() {
	got, err := queries.NewGetPartnersQueryHandler(suite.pg.DB).Handle(context.Background(), queries.NewGetPartnersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(got.Partners, 3)
	suite.Equal("Alex Kim", got.Partners[0].Name)
	suite.Equal(partner.Available, got.Partners[0].Availability)
	suite.Equal(partner.Offline, got.Partners[1].Availability)
	suite.Equal(partner.Busy, got.Partners[2].Availability)
	suite.Equal([]string{"Midtown", "Eastside"}, got.Partners[2].Areas)

	suite.Equal(2, got.Summary.TotalActive)
	suite.InDelta(4.5, got.Summary.AvgRating, 1e-9)
	suite.Equal([]string{"Midtown", "Downtown", "Eastside"}, got.Summary.TopAreas)
}

func (suite *QueriesIntegrationTestSuite) TestGetPartners_EmptyFleet() {
	suite.Require().NoError(suite.pg.Truncate())

	got, err := queries.NewGetPartnersQueryHandler(suite.pg.DB).Handle(context.Background(), queries.NewGetPartnersQuery())

	suite.Require().NoError(err)
	suite.Empty(got.Partners)
	suite.Zero(got.Summary.TotalActive)
	suite.Zero(got.Summary.AvgRating)
	suite.Empty(got.Summary.TopAreas)
}

func (suite *QueriesIntegrationTestSuite) TestGetPartner() {
	handler := queries.NewGetPartnerQueryHandler(suite.pg.DB)

	query, err := queries.NewGetPartnerQuery(suite.casey.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Casey Fox", got.Name)
	suite.Equal(partner.Capacity, got.CurrentLoad)
	suite.Equal("09:00", got.ShiftStart)
	suite.Equal("17:00", got.ShiftEnd)

	missing, err := queries.NewGetPartnerQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetAssignments_NewestFirstWithAvailability() {
	query, err := queries.NewGetAssignmentsQuery(0)
	suite.Require().NoError(err)

	got, err := queries.NewGetAssignmentsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(got.Assignments, 2)

	failure := got.Assignments[0]
	suite.Equal("ORD-2", failure.OrderNumber)
	suite.Equal("failed", failure.Status)
	suite.Equal("NoPartnerOnShift", failure.Reason)
	suite.Nil(failure.PartnerID)
	suite.Empty(failure.PartnerName)

	success := got.Assignments[1]
	suite.Equal("ORD-1", success.OrderNumber)
	suite.Equal("Alex Kim", success.PartnerName)
	suite.Equal(5*time.Second, success.Latency)
	suite.True(success.RecordedAt.Equal(day.Add(8*time.Hour + 5*time.Second)))

	suite.Equal(queries.PartnerAvailability{Available: 1, Busy: 1, Offline: 1}, got.Partners)
}

func (suite *QueriesIntegrationTestSuite) TestGetAssignments_Limit() {
	query, err := queries.NewGetAssignmentsQuery(1)
	suite.Require().NoError(err)

	got, err := queries.NewGetAssignmentsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(got.Assignments, 1)
	suite.Equal("ORD-2", got.Assignments[0].OrderNumber)
}

func (suite *QueriesIntegrationTestSuite) TestGetAssignmentMetrics() {
	got, err := queries.NewGetAssignmentMetricsQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewGetAssignmentMetricsQuery())

	suite.Require().NoError(err)
	suite.Equal(2, got.Total)
	suite.Equal(1, got.TotalAssigned)
	suite.InDelta(50.0, got.SuccessRate, 1e-9)
	suite.Equal(5*time.Second, got.AverageLatency)
	suite.Equal([]assignment.ReasonCount{{Reason: assignment.NoPartnerOnShift, Count: 1}}, got.FailureReasons)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
