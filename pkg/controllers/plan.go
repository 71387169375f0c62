package controllers

import (
	"fmt"
	"net/http"

	"github.com/envelope-zero/planner/pkg/budget"
	"github.com/envelope-zero/planner/pkg/httperrors"
	"github.com/envelope-zero/planner/pkg/httputil"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func (co Controller) RegisterPlanRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsPlans)
		r.POST("", co.CreatePlan)
	}
	{
		r.OPTIONS("/:userId", co.OptionsPlanList)
		r.GET("/:userId", co.GetPlans)
	}
	{
		r.OPTIONS("/:userId/:month", co.OptionsPlanDetail)
		r.GET("/:userId/:month", co.GetPlan)
	}
	{
		r.OPTIONS("/:userId/:month/insights", co.OptionsInsights)
		r.GET("/:userId/:month/insights", co.GetInsights)
		r.POST("/:userId/:month/insights", co.RegenerateInsights)
	}
}

// OptionsPlans returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Plans
//	@Success		204
//	@Router			/v1/plans [options]
func (co Controller) OptionsPlans(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsPlanList returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Plans
//	@Success		204
//	@Param			userId	path	string	true	"ID of the user"
//	@Router			/v1/plans/{userId} [options]
func (co Controller) OptionsPlanList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsPlanDetail returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Plans
//	@Success		204
//	@Param			userId	path	string	true	"ID of the user"
//	@Param			month	path	string	true	"The month in YYYY-MM format"
//	@Router			/v1/plans/{userId}/{month} [options]
func (co Controller) OptionsPlanDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsInsights returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Insights
//	@Success		204
//	@Param			userId	path	string	true	"ID of the user"
//	@Param			month	path	string	true	"The month in YYYY-MM format"
//	@Router			/v1/plans/{userId}/{month}/insights [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// CreatePlan generates the plan for a user and month
//
//	@Summary		Generate plan
//	@Description	Generates the budget plan for a user and month. An existing plan for the same user and month is replaced.
//	@Tags			Plans
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	PlanResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			plan	body		budget.PlanRequest	true	"Plan inputs"
//	@Router			/v1/plans [post]
func (co Controller) CreatePlan(c *gin.Context) {
	var req budget.PlanRequest
	if err := httputil.BindData(c, &req); err != nil {
		httperrors.Handler(c, err)
		return
	}

	plan, err := co.Engine.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlanResponse{Data: newPlan(plan)})
}

// GetPlans returns all plans of a user
//
//	@Summary		List plans
//	@Description	Returns all plans of a user, sorted by month
//	@Tags			Plans
//	@Produce		json
//	@Success		200		{object}	PlanListResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			userId	path		string	true	"ID of the user"
//	@Router			/v1/plans/{userId} [get]
func (co Controller) GetPlans(c *gin.Context) {
	plans, err := co.Engine.Plans(c.Request.Context(), c.Param("userId"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	data := make([]Plan, 0, len(plans))
	for _, p := range plans {
		data = append(data, newPlan(p))
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: data})
}

// GetPlan returns the plan of a user for a month
//
//	@Summary		Get plan
//	@Description	Returns the plan of a user for a specific month
//	@Tags			Plans
//	@Produce		json
//	@Success		200		{object}	PlanResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		404		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			userId	path		string	true	"ID of the user"
//	@Param			month	path		string	true	"The month in YYYY-MM format"
//	@Router			/v1/plans/{userId}/{month} [get]
func (co Controller) GetPlan(c *gin.Context) {
	userID, month := c.Param("userId"), c.Param("month")

	plan, ok, err := co.Engine.Plan(c.Request.Context(), userID, month)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if !ok {
		httperrors.Handler(c, planNotFound(userID, month))
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Data: newPlan(plan)})
}

// GetInsights returns the insights stored with a plan
//
//	@Summary		Get insights
//	@Description	Returns all insights stored with the plan, in the order they were created
//	@Tags			Insights
//	@Produce		json
//	@Success		200		{object}	InsightListResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		404		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			userId	path		string	true	"ID of the user"
//	@Param			month	path		string	true	"The month in YYYY-MM format"
//	@Router			/v1/plans/{userId}/{month}/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	userID, month := c.Param("userId"), c.Param("month")

	insights, ok, err := co.Engine.Insights(c.Request.Context(), userID, month)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if !ok {
		httperrors.Handler(c, planNotFound(userID, month))
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{Data: insights})
}

// RegenerateInsights derives insights for the current state of a plan
//
//	@Summary		Regenerate insights
//	@Description	Derives the insights for the current state of the plan. The plan is not modified.
//	@Tags			Insights
//	@Produce		json
//	@Success		200		{object}	InsightListResponse
//	@Failure		400		{object}	httperrors.HTTPError
//	@Failure		404		{object}	httperrors.HTTPError
//	@Failure		500		{object}	httperrors.HTTPError
//	@Param			userId	path		string	true	"ID of the user"
//	@Param			month	path		string	true	"The month in YYYY-MM format"
//	@Router			/v1/plans/{userId}/{month}/insights [post]
func (co Controller) RegenerateInsights(c *gin.Context) {
	userID, month := c.Param("userId"), c.Param("month")

	insights, ok, err := co.Engine.RegenerateInsights(c.Request.Context(), userID, month)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if !ok {
		httperrors.Handler(c, planNotFound(userID, month))
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{Data: insights})
}

func planNotFound(userID, month string) error {
	return fmt.Errorf("%w for user %q in %s", models.ErrPlanNotFound, userID, month)
}
