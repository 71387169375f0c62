package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/controllers"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	suite.createPlan("user-1", "2024-05")

	recorder := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"userId":      "user-1",
		"month":       "2024-05",
		"amount":      "100",
		"currency":    "USD",
		"category":    "dining",
		"bucket":      "wants",
		"description": "Dinner",
		"tags":        []string{"friends"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	t := suite.T()
	r := response.Data
	assert.Equal(t, models.TransactionExpense, r.Transaction.Type)
	assert.Equal(t, models.Wants, r.Transaction.Bucket)
	assert.Equal(t, "367.25", r.Transaction.Money.BaseAmount.String())
	assert.Equal(t, "3.6725", r.Transaction.Money.FXRate.String())
	assert.Equal(t, "367.25", r.Plan.Buckets[models.Wants].Spent.BaseAmount.String())
	assert.Equal(t, r.Plan.ID, r.Transaction.BudgetPlanID)
	assert.NotNil(t, r.Insights)
	assert.Empty(t, r.Insights)

	recorder = suite.request(http.MethodGet, "/v1/transactions/"+r.Transaction.ID.String(), nil)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var fetched controllers.TransactionResponse
	test.DecodeResponse(t, &recorder, &fetched)
	assert.Equal(t, r.Transaction.ID, fetched.Data.ID)
	assert.Equal(t, []string{"friends"}, fetched.Data.Tags)
}

func (suite *TestSuiteStandard) TestCreateTransactionWithoutPlan() {
	recorder := suite.request(http.MethodPost, "/v1/transactions", map[string]any{
		"userId": "user-3", "month": "2024-07", "amount": "50", "currency": "EUR", "category": "rent", "bucket": "NEEDS",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/plans/user-3/2024-07", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.PlanResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("EUR", response.Data.BaseCurrency)
}

func (suite *TestSuiteStandard) TestCreateTransactionErrors() {
	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"Bad bucket", map[string]any{"userId": "u", "month": "2024-05", "amount": "1", "currency": "AED", "category": "rent", "bucket": "LUXURY"}, "NEEDS, WANTS"},
		{"No category", map[string]any{"userId": "u", "month": "2024-05", "amount": "1", "currency": "AED", "bucket": "NEEDS"}, models.ErrMissingCategory.Error()},
		{"Bad month", map[string]any{"userId": "u", "month": "2024-00", "amount": "1", "currency": "AED", "category": "rent", "bucket": "NEEDS"}, "YYYY-MM"},
		{"Bad amount", map[string]any{"userId": "u", "month": "2024-05", "amount": "lots", "currency": "AED", "category": "rent", "bucket": "NEEDS"}, "un-parseable"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.request(http.MethodPost, "/v1/transactions", tt.body)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
			suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionErrors() {
	recorder := suite.request(http.MethodGet, "/v1/transactions/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = suite.request(http.MethodGet, "/v1/transactions/"+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "there is no transaction")
}
