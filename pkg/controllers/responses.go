package controllers

import (
	"github.com/envelope-zero/planner/pkg/budget"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
)

// We use one type per Endpoint so that swagger can parse them - it cannot handle generics yet, see
// https://github.com/swaggo/swag/issues/1170

// Plan is the API representation of a budget plan.
//
// It adds the savings and debt sub-allocations, which are derived from the
// plan and never stored.
type Plan struct {
	models.Plan
	SavingsSplit models.SavingsSplit `json:"savingsSplit"`
	DebtSplit    models.DebtSplit    `json:"debtSplit"`
}

func newPlan(p models.Plan) Plan {
	return Plan{
		Plan:         p,
		SavingsSplit: p.SavingsSplit(),
		DebtSplit:    p.DebtSplit(),
	}
}

type PlanResponse struct {
	Data Plan `json:"data"` // Data for the plan
}

type PlanListResponse struct {
	Data []Plan `json:"data"` // List of plans, sorted by month
}

type InsightListResponse struct {
	Data []models.Insight `json:"data"` // List of insights
}

// TransactionResult is the outcome of logging a transaction.
type TransactionResult struct {
	Transaction models.Transaction `json:"transaction"`
	Plan        Plan               `json:"updatedPlan"`
	Insights    []models.Insight   `json:"insights"` // Insights triggered by this transaction
}

func newTransactionResult(r budget.TransactionResult) TransactionResult {
	return TransactionResult{
		Transaction: r.Transaction,
		Plan:        newPlan(r.Plan),
		Insights:    r.Insights,
	}
}

type TransactionCreateResponse struct {
	Data TransactionResult `json:"data"`
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

type RateListResponse struct {
	Data map[string]money.Rate `json:"data"` // Cached rates, keyed by FROM_TO
}

type RateResponse struct {
	Data money.Rate `json:"data"`
}
