package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/settingsrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	getHandler   queries.GetOrderQueryHandler
	listHandler  queries.ListOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	settingsRepo *settingsrepo.GormSettingsRepository
}

// mockAggregateTracker satisfies the repository's tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ int64, _ any) {}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &settingsrepo.SettingDTO{}))

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.settingsRepo = settingsrepo.NewGormSettingsRepository(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE settings").Error)
}

func (suite *OrderQueriesTestSuite) addOrder(number, siteName, driver string, items []string) *order.Order {
	o, err := order.NewOrder(number, order.NewSite(siteName, "1 Main St"), items, driver)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesTestSuite) TestGetOrder_ReturnsDecodedFields() {
	o := suite.addOrder("ORD-20250601-0001", "North Depot", "D7", []string{"pump", "hose"})

	photo := "proof.jpg"
	suite.Require().NoError(o.Start(&photo, map[string]any{"fuel": "full"}))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), resp.ID)
	suite.Equal("ORD-20250601-0001", resp.OrderNumber)
	suite.Equal("North Depot", resp.Site.Name)
	suite.Equal([]string{"pump", "hose"}, resp.Items)
	suite.Equal("D7", resp.Driver)
	suite.Equal("in_transit", resp.Status)
	suite.Require().NotNil(resp.StartPhoto)
	suite.Equal("proof.jpg", *resp.StartPhoto)
	suite.Equal(map[string]any{"fuel": "full"}, resp.StartAnswers)
	suite.NotNil(resp.StartAt)
	suite.Nil(resp.CompleteAt)
	suite.Nil(resp.ReturnNotes)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(4242)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_CorruptColumns_DegradePerField() {
	o := suite.addOrder("", "North Depot", "D7", []string{"pump"})

	err := suite.db.Exec(
		"UPDATE orders SET site = ?, items = ?, start_answers = ? WHERE id = ?",
		"{oops", "[oops", "oops", o.ID(),
	).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(queries.SiteResponse{}, resp.Site)
	suite.NotNil(resp.Items)
	suite.Empty(resp.Items)
	suite.Nil(resp.StartAnswers)
}

func (suite *OrderQueriesTestSuite) TestListOrders_NoFilters_ReturnsNewestFirst() {
	first := suite.addOrder("", "North Depot", "D1", nil)
	second := suite.addOrder("", "South Depot", "D2", nil)

	// Make creation times distinct regardless of insert speed.
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", "2025-06-01T08:00:00.000Z", first.ID()).Error,
	)
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", "2025-06-02T08:00:00.000Z", second.ID()).Error,
	)

	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID)
	suite.Equal(first.ID(), result[1].ID)
}

func (suite *OrderQueriesTestSuite) TestListOrders_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestListOrders_SearchMatchesNumberSiteDriverAndItems() {
	byNumber := suite.addOrder("ORD-20250601-7777", "North Depot", "D1", nil)
	bySite := suite.addOrder("", "Harbor Terminal", "D2", nil)
	byDriver := suite.addOrder("", "North Depot", "Smith", nil)
	byItem := suite.addOrder("", "North Depot", "D4", []string{"generator"})
	suite.addOrder("", "North Depot", "D5", nil) // matches nothing below

	cases := []struct {
		search string
		wantID int64
	}{
		{"7777", byNumber.ID()},
		{"Harbor", bySite.ID()},
		{"Smith", byDriver.ID()},
		{"generator", byItem.ID()},
	}

	for _, tc := range cases {
		query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{Search: tc.search})
		suite.Require().NoError(err)

		result, err := suite.listHandler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.Require().Len(result, 1, "search %q", tc.search)
		suite.Equal(tc.wantID, result[0].ID, "search %q", tc.search)
	}
}

func (suite *OrderQueriesTestSuite) TestListOrders_CreatedRange_BoundsAreInclusive() {
	early := suite.addOrder("", "North Depot", "D1", nil)
	middle := suite.addOrder("", "North Depot", "D2", nil)
	late := suite.addOrder("", "North Depot", "D3", nil)

	stamps := map[int64]string{
		early.ID():  "2025-06-01T08:00:00.000Z",
		middle.ID(): "2025-06-02T08:00:00.000Z",
		late.ID():   "2025-06-03T08:00:00.000Z",
	}
	for id, stamp := range stamps {
		suite.Require().NoError(
			suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?", stamp, id).Error,
		)
	}

	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		CreatedFrom: "2025-06-02",
		CreatedTo:   "2025-06-02",
	})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(middle.ID(), result[0].ID)
}

func (suite *OrderQueriesTestSuite) TestListOrders_StartRange_FiltersOnStartAt() {
	started := suite.addOrder("", "North Depot", "D1", nil)
	suite.Require().NoError(started.Start(nil, nil))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), started))
	suite.Require().NoError(
		suite.db.Exec("UPDATE orders SET start_at = ? WHERE id = ?", "2025-06-02T10:00:00.000Z", started.ID()).Error,
	)

	suite.addOrder("", "North Depot", "D2", nil) // never started

	query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{
		StartFrom: "2025-06-01",
		StartTo:   "2025-06-03",
	})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(started.ID(), result[0].ID)
}

func (suite *OrderQueriesTestSuite) TestListOrders_InvalidBound_FailsConstruction() {
	_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{CreatedFrom: "June 1st"})
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderQueriesTestSuite) TestGetSetting_MissingKey_ReturnsNil() {
	handler := queries.NewGetSettingQueryHandler(suite.db)
	query, err := queries.NewGetSettingQuery("absent")
	suite.Require().NoError(err)

	value, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Nil(value)
}

func (suite *OrderQueriesTestSuite) TestGetSetting_ReturnsStoredDocument() {
	doc := map[string]any{"questions": []any{"fuel"}}
	_, err := suite.settingsRepo.Set(context.Background(), "start_form", doc)
	suite.Require().NoError(err)

	handler := queries.NewGetSettingQueryHandler(suite.db)
	query, err := queries.NewGetSettingQuery("start_form")
	suite.Require().NoError(err)

	value, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(doc, value)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.getHandler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
