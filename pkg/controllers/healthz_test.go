package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestHealthzSuccess() {
	recorder := suite.request(http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "problem with the database connection")
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/healthz", "OPTIONS, GET"},
		{"/v1/plans", "OPTIONS, POST"},
		{"/v1/plans/user-1", "OPTIONS, GET"},
		{"/v1/plans/user-1/2024-05", "OPTIONS, GET"},
		{"/v1/plans/user-1/2024-05/insights", "OPTIONS, GET, POST"},
		{"/v1/transactions", "OPTIONS, POST"},
		{"/v1/transactions/4e743e94-6a4b-44d6-aba5-d77c87103ff7", "OPTIONS, GET"},
		{"/v1/fx/rates", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodOptions, tt.path, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"), tt.path)
	}
}
