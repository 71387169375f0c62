package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/envelope-zero/planner/pkg/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Engine generates budget plans and applies transactions to them.
//
// All mutations of a plan are serialized per user and month.
type Engine struct {
	store      store.Store
	rates      *money.Rates
	rules      models.RuleSet
	categories models.CategoryLists
	now        func() time.Time
	locks      keyedMutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithRuleSet sets the rule set used when a request does not specify one.
func WithRuleSet(r models.RuleSet) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// WithCategories sets the category names of each bucket.
func WithCategories(c models.CategoryLists) Option {
	return func(e *Engine) {
		e.categories = c
	}
}

// WithClock sets the function used to get the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine that persists to s and converts currencies with rates.
func NewEngine(s store.Store, rates *money.Rates, opts ...Option) *Engine {
	e := &Engine{
		store:      s,
		rates:      rates,
		rules:      models.DefaultRuleSet(),
		categories: models.DefaultCategories(),
		now:        time.Now,
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// PlanRequest is the input for generating a plan.
type PlanRequest struct {
	UserID       string                `json:"userId" example:"user-42"`
	Month        string                `json:"month" example:"2024-05"`
	BaseCurrency string                `json:"baseCurrency" example:"AED"`
	Incomes      []models.IncomeSource `json:"incomes"`
	Debts        []models.DebtInput    `json:"debts"`
	Goals        []models.Goal         `json:"goals"`
	RuleSet      *models.RuleSet       `json:"ruleSet,omitempty"` // Defaults to the configured rule set
}

// TransactionRequest is the input for logging a transaction.
type TransactionRequest struct {
	UserID      string          `json:"userId" example:"user-42"`
	Month       string          `json:"month" example:"2024-05"`
	Amount      decimal.Decimal `json:"amount" example:"600"` // Negative amounts are income
	Currency    string          `json:"currency" example:"AED"`
	Category    string          `json:"category" example:"groceries"`
	Bucket      string          `json:"bucket" example:"NEEDS"`
	Description string          `json:"description" example:"Weekly shopping"`
	Date        *time.Time      `json:"date,omitempty" example:"2024-05-14T00:00:00Z"` // Defaults to now
	Tags        []string        `json:"tags,omitempty"`
}

// TransactionResult is the outcome of logging a transaction.
type TransactionResult struct {
	Transaction models.Transaction `json:"transaction"`
	Plan        models.Plan        `json:"updatedPlan"`
	Insights    []models.Insight   `json:"insights"` // Only the insights triggered by this transaction
}

// Rates returns the exchange rate cache of the engine.
func (e *Engine) Rates() *money.Rates {
	return e.rates
}

// GeneratePlan creates the plan for a user and month, replacing any
// existing plan for them.
func (e *Engine) GeneratePlan(ctx context.Context, req PlanRequest) (models.Plan, error) {
	userID, month, err := parseKey(req.UserID, req.Month)
	if err != nil {
		return models.Plan{}, err
	}

	base, err := money.ParseCurrency(req.BaseCurrency)
	if err != nil {
		return models.Plan{}, err
	}

	rules := e.rules
	if req.RuleSet != nil {
		rules = *req.RuleSet
	}

	if rules.DebtStrategy == "" {
		rules.DebtStrategy = e.rules.DebtStrategy
	}

	if rules.DebtStrategy, err = models.ParseDebtStrategy(string(rules.DebtStrategy)); err != nil {
		return models.Plan{}, err
	}

	incomes, debts, goals, err := normalizeInputs(req.Incomes, req.Debts, req.Goals)
	if err != nil {
		return models.Plan{}, err
	}

	unlock := e.locks.Lock(planKey(userID, month))
	defer unlock()

	plan := e.plan(ctx, userID, month, base, incomes, debts, goals, rules)
	if err := e.store.SavePlan(ctx, plan); err != nil {
		return models.Plan{}, err
	}

	log.Debug().Str("user", userID).Str("month", month.String()).Str("income", plan.TotalIncome.BaseAmount.String()).Msg("Plan generated")
	return plan, nil
}

// plan assembles a new plan. It does not persist it.
func (e *Engine) plan(ctx context.Context, userID string, month types.Month, base string, incomes []models.IncomeSource, debts []models.DebtInput, goals []models.Goal, rules models.RuleSet) models.Plan {
	now := e.now()

	total := TotalIncome(ctx, e.rates, incomes, base)
	snapshots := debtSnapshots(ctx, e.rates, debts, base)
	allocation := Allocate(total, rules, MinimumPayments(snapshots))

	plan := models.Plan{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		BaseCurrency: base,
		TotalIncome:  money.Base(total, base, now),
		RuleSet:      rules,
		Debts:        PlanDebts(snapshots, rules.DebtStrategy, allocation.Planned[models.Debt]),
		Goals:        ProjectGoals(ctx, e.rates, goals, base, now),
		Insights:     allocationInsights(allocation, base, now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	buildBuckets(&plan, allocation, e.categories, now)

	if plan.Insights == nil {
		plan.Insights = []models.Insight{}
	}

	return plan
}

// LogTransaction records a transaction and applies it to the plan of the
// user for the month. A plan without any income is created if none exists.
func (e *Engine) LogTransaction(ctx context.Context, req TransactionRequest) (TransactionResult, error) {
	userID, month, err := parseKey(req.UserID, req.Month)
	if err != nil {
		return TransactionResult{}, err
	}

	bucket, err := models.ParseBucketType(req.Bucket)
	if err != nil {
		return TransactionResult{}, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return TransactionResult{}, models.ErrMissingCategory
	}

	currency, err := money.ParseCurrency(req.Currency)
	if err != nil {
		return TransactionResult{}, err
	}

	unlock := e.locks.Lock(planKey(userID, month))
	defer unlock()

	plan, ok, err := e.store.Plan(ctx, userID, month)
	if err != nil {
		return TransactionResult{}, err
	}

	if !ok {
		log.Debug().Str("user", userID).Str("month", month.String()).Msg("No plan for transaction, creating an empty one")
		plan = e.plan(ctx, userID, month, currency, nil, nil, nil, e.rules)
	}

	now := e.now()
	date := now
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	m := e.rates.CreateMoney(ctx, req.Amount, currency, plan.BaseCurrency)
	transaction := models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		BudgetPlanID: plan.ID,
		Month:        month,
		Type:         models.TransactionTypeOf(req.Amount),
		Money:        m,
		Category:     category,
		Bucket:       bucket,
		Description:  strings.TrimSpace(req.Description),
		Date:         date,
		Tags:         append([]string{}, req.Tags...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	insights := ApplyTransaction(&plan, bucket, category, m.BaseAmount, now)

	if err := e.store.SaveTransaction(ctx, transaction, plan); err != nil {
		return TransactionResult{}, err
	}

	return TransactionResult{
		Transaction: transaction,
		Plan:        plan,
		Insights:    insights,
	}, nil
}

// Plan returns the plan of a user for a month. The boolean is false if
// there is none.
func (e *Engine) Plan(ctx context.Context, userID, month string) (models.Plan, bool, error) {
	u, m, err := parseKey(userID, month)
	if err != nil {
		return models.Plan{}, false, err
	}

	return e.store.Plan(ctx, u, m)
}

// Plans returns all plans of a user.
func (e *Engine) Plans(ctx context.Context, userID string) ([]models.Plan, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, models.ErrMissingUserID
	}

	return e.store.Plans(ctx, userID)
}

// Insights returns the insights stored with the plan of a user for a month.
func (e *Engine) Insights(ctx context.Context, userID, month string) ([]models.Insight, bool, error) {
	plan, ok, err := e.Plan(ctx, userID, month)
	if err != nil || !ok {
		return nil, ok, err
	}

	return plan.Insights, true, nil
}

// RegenerateInsights derives the insights for the current state of a plan
// without storing them.
func (e *Engine) RegenerateInsights(ctx context.Context, userID, month string) ([]models.Insight, bool, error) {
	plan, ok, err := e.Plan(ctx, userID, month)
	if err != nil || !ok {
		return nil, ok, err
	}

	return GenerateInsights(plan, e.now()), true, nil
}

// Transaction returns a transaction by its ID.
func (e *Engine) Transaction(ctx context.Context, id uuid.UUID) (models.Transaction, bool, error) {
	return e.store.Transaction(ctx, id)
}

// Ping checks that the store is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

func parseKey(userID, month string) (string, types.Month, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", types.Month{}, models.ErrMissingUserID
	}

	m, err := types.ParseMonth(month)
	if err != nil {
		return "", types.Month{}, err
	}

	return userID, m, nil
}

func planKey(userID string, month types.Month) string {
	return userID + "/" + month.String()
}

// normalizeInputs validates the currencies of all inputs and returns
// copies with canonical currency codes.
func normalizeInputs(incomes []models.IncomeSource, debts []models.DebtInput, goals []models.Goal) ([]models.IncomeSource, []models.DebtInput, []models.Goal, error) {
	canonical := func(code string) (string, error) {
		if code == "" {
			return "", nil
		}
		return money.ParseCurrency(code)
	}

	var err error
	i := append([]models.IncomeSource(nil), incomes...)
	for n := range i {
		if i[n].Currency, err = canonical(i[n].Currency); err != nil {
			return nil, nil, nil, fmt.Errorf("income %q: %w", i[n].Name, err)
		}
	}

	d := append([]models.DebtInput(nil), debts...)
	for n := range d {
		if d[n].Currency, err = canonical(d[n].Currency); err != nil {
			return nil, nil, nil, fmt.Errorf("debt %q: %w", d[n].Name, err)
		}
	}

	g := append([]models.Goal(nil), goals...)
	for n := range g {
		if g[n].Currency, err = canonical(g[n].Currency); err != nil {
			return nil, nil, nil, fmt.Errorf("goal %q: %w", g[n].Name, err)
		}
	}

	return i, d, g, nil
}
