package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/shopspring/decimal"
)

// debtAlertShare is the share of income above which planned debt
// payments raise an alert.
var debtAlertShare = decimal.RequireFromString("0.4")

// Allocation is income split into planned amounts per bucket.
type Allocation struct {
	TotalIncome decimal.Decimal
	Planned     map[models.BucketType]decimal.Decimal

	SavingsFloor       decimal.Decimal // Minimum savings required by the rule set
	SavingsFloorRaised bool            // Savings were raised to meet SavingsFloor
	DebtFloor          decimal.Decimal // Sum of all minimum debt payments
	DebtFloorRaised    bool            // Debt was raised to meet DebtFloor
}

// TotalIncome sums all active income sources in the base currency.
// Inactive sources are skipped entirely.
func TotalIncome(ctx context.Context, n money.Normalizer, incomes []models.IncomeSource, base string) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		if !i.Active {
			continue
		}

		total = total.Add(n.CreateMoney(ctx, i.Amount, currencyOr(i.Currency, base), base).BaseAmount)
	}

	return total
}

// Allocate splits totalIncome into buckets according to rules.
//
// Savings are raised to the minimum savings percentage and debt is raised
// to minPayments if the percentages do not cover them. No other bucket is
// reduced to fund this.
func Allocate(totalIncome decimal.Decimal, rules models.RuleSet, minPayments decimal.Decimal) Allocation {
	a := Allocation{
		TotalIncome: totalIncome,
		Planned:     make(map[models.BucketType]decimal.Decimal, len(models.BucketTypes)),
		DebtFloor:   minPayments,
	}

	for _, t := range models.BucketTypes {
		a.Planned[t] = totalIncome.Mul(rules.Buckets.Of(t)).Div(hundred)
	}

	a.SavingsFloor = totalIncome.Mul(rules.MinSavingsPercent).Div(hundred)
	if a.Planned[models.Savings].LessThan(a.SavingsFloor) {
		a.Planned[models.Savings] = a.SavingsFloor
		a.SavingsFloorRaised = true
	}

	if a.Planned[models.Debt].LessThan(minPayments) {
		a.Planned[models.Debt] = minPayments
		a.DebtFloorRaised = true
	}

	return a
}

// buildBuckets sets the buckets of the plan from the allocation. The
// planned amount of each bucket is split evenly across its categories.
func buildBuckets(p *models.Plan, a Allocation, categories models.CategoryLists, now time.Time) {
	p.Buckets = make(map[models.BucketType]*models.Bucket, len(models.BucketTypes))

	for _, t := range models.BucketTypes {
		planned := a.Planned[t]
		b := &models.Bucket{
			Type:       t,
			Planned:    money.Base(planned, p.BaseCurrency, now),
			Spent:      money.Zero(p.BaseCurrency, now),
			Remaining:  money.Base(planned, p.BaseCurrency, now),
			Status:     Classify(decimal.Zero, planned),
			Categories: make(map[string]*models.CategoryBudget),
		}

		names := categories[t]
		if len(names) > 0 {
			perCategory := planned.Div(decimal.NewFromInt(int64(len(names))))
			for _, name := range names {
				b.Categories[name] = &models.CategoryBudget{
					Name:      name,
					Planned:   perCategory,
					Spent:     decimal.Zero,
					Remaining: perCategory,
					Status:    Classify(decimal.Zero, perCategory),
				}
			}
		}

		p.Buckets[t] = b
	}
}

// allocationInsights reports floors that the rule set did not fund and
// excessive debt.
func allocationInsights(a Allocation, base string, now time.Time) []models.Insight {
	var insights []models.Insight

	if a.SavingsFloorRaised {
		insights = append(insights, models.NewInsight(
			models.InsightWarning,
			fmt.Sprintf("Your savings allocation was below the minimum and has been raised to %s %s", a.Planned[models.Savings].StringFixed(2), base),
			models.Savings, "", now,
		))
	}

	if a.DebtFloorRaised {
		insights = append(insights, models.NewInsight(
			models.InsightWarning,
			fmt.Sprintf("Your debt allocation did not cover the minimum payments and has been raised to %s %s", a.Planned[models.Debt].StringFixed(2), base),
			models.Debt, "", now,
		))
	}

	if a.Planned[models.Debt].GreaterThan(a.TotalIncome.Mul(debtAlertShare)) {
		insights = append(insights, models.NewInsight(
			models.InsightAlert,
			fmt.Sprintf("Debt payments of %s %s take up more than 40%% of your income", a.Planned[models.Debt].StringFixed(2), base),
			models.Debt, "", now,
		))
	}

	return insights
}

func currencyOr(code, fallback string) string {
	if code == "" {
		return fallback
	}

	return code
}
