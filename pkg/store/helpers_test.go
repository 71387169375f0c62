package store_test

import (
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func testPlan(userID string, month types.Month, income int64) models.Plan {
	planned := decimal.NewFromInt(income)

	return models.Plan{
		ID:           uuid.New(),
		UserID:       userID,
		Month:        month,
		BaseCurrency: "AED",
		TotalIncome:  money.Base(planned, "AED", testNow),
		RuleSet:      models.DefaultRuleSet(),
		Buckets: map[models.BucketType]*models.Bucket{
			models.Needs: {
				Type:      models.Needs,
				Planned:   money.Base(planned, "AED", testNow),
				Spent:     money.Zero("AED", testNow),
				Remaining: money.Base(planned, "AED", testNow),
				Status:    models.StatusUnder,
				Categories: map[string]*models.CategoryBudget{
					"rent": {Name: "rent", Planned: planned, Spent: decimal.Zero, Remaining: planned, Status: models.StatusUnder},
				},
			},
		},
		Debts:     []models.DebtSnapshot{},
		Goals:     []models.GoalSnapshot{},
		Insights:  []models.Insight{models.NewInsight(models.InsightInfo, "Welcome", models.Needs, "rent", testNow)},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testTransaction(plan models.Plan) models.Transaction {
	return models.Transaction{
		ID:           uuid.New(),
		UserID:       plan.UserID,
		BudgetPlanID: plan.ID,
		Month:        plan.Month,
		Type:         models.TransactionExpense,
		Money:        money.Base(decimal.NewFromInt(600), "AED", testNow),
		Category:     "groceries",
		Bucket:       models.Needs,
		Description:  "Weekly shopping",
		Date:         testNow,
		Tags:         []string{"family"},
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
}
