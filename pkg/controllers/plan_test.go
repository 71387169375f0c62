package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/controllers"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreatePlan() {
	p := suite.createPlan("user-1", "2024-05")

	t := suite.T()
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "2024-05", p.Month.String())
	assert.Equal(t, "5000", p.Buckets[models.Needs].Planned.BaseAmount.String())
	assert.Equal(t, "2000", p.Buckets[models.Wants].Planned.BaseAmount.String())
	assert.Equal(t, "1500", p.Buckets[models.Savings].Planned.BaseAmount.String())
	assert.Equal(t, "1500", p.Buckets[models.Debt].Planned.BaseAmount.String())
	assert.Len(t, p.Buckets[models.Needs].Categories, 6)
	assert.Equal(t, "750", p.SavingsSplit.LocalEmergencyFund.String())
	assert.True(t, p.DebtSplit.OtherDebt.IsZero())
}

func (suite *TestSuiteStandard) TestCreatePlanGoalDate() {
	recorder := suite.request(http.MethodPost, "/v1/plans", map[string]any{
		"userId":       "user-1",
		"month":        "2024-05",
		"baseCurrency": "AED",
		"incomes": []map[string]any{
			{"name": "Salary", "amount": "10000", "currency": "AED", "active": true},
		},
		"goals": []map[string]any{
			{"name": "House", "targetAmount": "50000", "currentAmount": "10000", "currency": "AED", "targetDate": "2099-12-01"},
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	t := suite.T()
	suite.Require().Len(response.Data.Goals, 1)
	assert.Equal(t, "2099-12-01", response.Data.Goals[0].TargetDate.String())
	assert.Greater(t, response.Data.Goals[0].MonthsRemaining, 0)
	assert.Equal(t, "20", response.Data.Goals[0].ProgressPercent.String())
}

func (suite *TestSuiteStandard) TestCreatePlanErrors() {
	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Empty body", "", http.StatusBadRequest, "must not be empty"},
		{"Broken JSON", `{ "userId": `, http.StatusBadRequest, "un-parseable"},
		{"Wrong type", `{ "userId": 5 }`, http.StatusBadRequest, "un-parseable"},
		{"Bad month", map[string]any{"userId": "u", "month": "May", "baseCurrency": "AED"}, http.StatusBadRequest, "YYYY-MM"},
		{"No user", map[string]any{"month": "2024-05", "baseCurrency": "AED"}, http.StatusBadRequest, models.ErrMissingUserID.Error()},
		{"Bad goal date", map[string]any{"userId": "u", "month": "2024-05", "baseCurrency": "AED", "goals": []map[string]any{{"name": "House", "targetDate": "12/2099"}}}, http.StatusBadRequest, "YYYY-MM-DD"},
		{"Bad currency", map[string]any{"userId": "u", "month": "2024-05", "baseCurrency": "XXXX"}, http.StatusBadRequest, "ISO 4217"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/plans", tt.body)
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)
			suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetPlan() {
	created := suite.createPlan("user-1", "2024-05")

	recorder := suite.request(http.MethodGet, "/v1/plans/user-1/2024-05", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(created.ID, response.Data.ID)
	suite.Assert().Equal("1500", response.Data.Buckets[models.Debt].Planned.BaseAmount.String())
}

func (suite *TestSuiteStandard) TestGetPlanErrors() {
	recorder := suite.request(http.MethodGet, "/v1/plans/user-1/2024-05", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "there is no budget plan")

	recorder = suite.request(http.MethodGet, "/v1/plans/user-1/2024-5", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetPlans() {
	suite.createPlan("user-1", "2024-06")
	suite.createPlan("user-1", "2024-04")
	suite.createPlan("user-2", "2024-05")

	recorder := suite.request(http.MethodGet, "/v1/plans/user-1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.PlanListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("2024-04", response.Data[0].Month.String())
	suite.Assert().Equal("2024-06", response.Data[1].Month.String())

	recorder = suite.request(http.MethodGet, "/v1/plans/nobody", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	suite.Assert().JSONEq(`{"data":[]}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestInsights() {
	suite.createPlan("user-1", "2024-05")

	recorder := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"userId": "user-1", "month": "2024-05", "amount": "900", "currency": "AED", "category": "groceries", "bucket": "NEEDS",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/plans/user-1/2024-05/insights", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var stored controllers.InsightListResponse
	test.DecodeResponse(suite.T(), &recorder, &stored)
	suite.Require().Len(stored.Data, 1)
	suite.Assert().Equal(models.InsightAlert, stored.Data[0].Type)
	suite.Assert().Equal("groceries", *stored.Data[0].Category)

	recorder = suite.request(http.MethodPost, "/v1/plans/user-1/2024-05/insights", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var regenerated controllers.InsightListResponse
	test.DecodeResponse(suite.T(), &recorder, &regenerated)
	suite.Require().Len(regenerated.Data, 1)
	suite.Assert().Equal(stored.Data[0].Message, regenerated.Data[0].Message)
	suite.Assert().NotEqual(stored.Data[0].ID, regenerated.Data[0].ID)

	// Regenerating does not store anything
	recorder = suite.request(http.MethodGet, "/v1/plans/user-1/2024-05/insights", nil)
	var after controllers.InsightListResponse
	test.DecodeResponse(suite.T(), &recorder, &after)
	suite.Assert().Equal(stored.Data, after.Data)
}

func (suite *TestSuiteStandard) TestInsightsPlanNotFound() {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		recorder := suite.request(method, "/v1/plans/user-1/2024-05/insights", nil)
		test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
	}
}

func (suite *TestSuiteStandard) TestPlansDatabaseClosed() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/v1/plans/user-1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "problem with the database connection")
}
