package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/controllers"
	"github.com/envelope-zero/planner/pkg/test"
)

func (suite *TestSuiteStandard) TestGetRates() {
	recorder := suite.request(http.MethodGet, "/v1/fx/rates", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	suite.Assert().JSONEq(`{"data":{}}`, recorder.Body.String())

	recorder = suite.request(http.MethodGet, "/v1/fx/rates?from=usd&to=aed", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var rate controllers.RateResponse
	test.DecodeResponse(suite.T(), &recorder, &rate)
	suite.Assert().Equal("3.6725", rate.Data.Rate.String())
	suite.Assert().Equal("fallback", rate.Data.Source)

	recorder = suite.request(http.MethodGet, "/v1/fx/rates", nil)
	var rates controllers.RateListResponse
	test.DecodeResponse(suite.T(), &recorder, &rates)
	suite.Assert().Contains(rates.Data, "USD_AED")
}

func (suite *TestSuiteStandard) TestGetRatesInvalidCurrency() {
	recorder := suite.request(http.MethodGet, "/v1/fx/rates?from=usd&to=dollars", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
