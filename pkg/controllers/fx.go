package controllers

import (
	"net/http"

	"github.com/envelope-zero/planner/pkg/httperrors"
	"github.com/envelope-zero/planner/pkg/httputil"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/gin-gonic/gin"
)

// RegisterFXRoutes registers the routes for exchange rates with
// the RouterGroup that is passed.
func (co Controller) RegisterFXRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/rates", co.OptionsRates)
	r.GET("/rates", co.GetRates)
}

// OptionsRates returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			FX
//	@Success		204
//	@Router			/v1/fx/rates [options]
func (co Controller) OptionsRates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// RateQueryFilter selects a single currency pair.
type RateQueryFilter struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// GetRates returns the cached exchange rates
//
// If both from and to are set, the rate for that pair is looked up and
// returned instead. Lookups never fail, unknown pairs fall back to 1.
//
//	@Summary		Get exchange rates
//	@Description	Returns all cached exchange rates, or the rate for a single pair
//	@Tags			FX
//	@Produce		json
//	@Success		200		{object}	RateListResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Param			from	query		string	false	"ISO 4217 code of the source currency"
//	@Param			to		query		string	false	"ISO 4217 code of the target currency"
//	@Router			/v1/fx/rates [get]
func (co Controller) GetRates(c *gin.Context) {
	var filter RateQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httperrors.Handler(c, httputil.ErrInvalidBody)
		return
	}

	if filter.From == "" || filter.To == "" {
		c.JSON(http.StatusOK, RateListResponse{Data: co.Engine.Rates().All()})
		return
	}

	from, err := money.ParseCurrency(filter.From)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	to, err := money.ParseCurrency(filter.To)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, RateResponse{Data: co.Engine.Rates().Rate(c.Request.Context(), from, to)})
}
