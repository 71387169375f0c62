package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/envelope-zero/planner/pkg/budget"
	"github.com/envelope-zero/planner/pkg/controllers"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/envelope-zero/planner/pkg/store"
	"github.com/envelope-zero/planner/pkg/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type TestSuiteStandard struct {
	suite.Suite
	store  *store.Gorm
	router *gin.Engine
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	s, err := store.OpenSQLite(":memory:")
	if err != nil {
		suite.T().Fatalf("Database initialization failed with: %#v", err)
	}
	suite.store = s

	clock := func() time.Time { return testNow }
	co := controllers.Controller{
		Engine: budget.NewEngine(s, money.NewRates(nil, money.WithClock(clock)), budget.WithClock(clock)),
	}

	r := gin.New()
	co.RegisterHealthzRoutes(r.Group("/healthz"))
	v1 := r.Group("/v1")
	co.RegisterPlanRoutes(v1.Group("/plans"))
	co.RegisterTransactionRoutes(v1.Group("/transactions"))
	co.RegisterFXRoutes(v1.Group("/fx"))
	suite.router = r
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	_ = suite.store.Close()
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func (suite *TestSuiteStandard) CloseDB() {
	suite.Require().Nil(suite.store.Close())
}

func (suite *TestSuiteStandard) request(method, url string, body any) httptest.ResponseRecorder {
	return test.Request(suite.T(), suite.router, method, url, body)
}

func (suite *TestSuiteStandard) createPlan(userID, month string) controllers.Plan {
	recorder := suite.request(http.MethodPost, "/v1/plans", map[string]any{
		"userId":       userID,
		"month":        month,
		"baseCurrency": "AED",
		"incomes": []map[string]any{
			{"name": "Salary", "amount": "10000", "currency": "AED", "active": true},
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response.Data
}
