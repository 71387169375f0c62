// Package budget implements the budget engine: it allocates income into
// buckets, plans debt payments, projects savings goals, applies
// transactions to plans and derives insights from them.
package budget

import (
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	hundred   = decimal.NewFromInt(100)
	nearLimit = decimal.RequireFromString("0.8")
)

// Classify returns the status for an amount spent against a planned amount.
//
// Spending more than planned is OVER, spending at least 80% is NEAR_LIMIT.
// Nothing planned is always UNDER.
func Classify(spent, planned decimal.Decimal) models.Status {
	if planned.IsZero() {
		return models.StatusUnder
	}

	if spent.GreaterThan(planned) {
		return models.StatusOver
	}

	if spent.GreaterThanOrEqual(planned.Mul(nearLimit)) {
		return models.StatusNearLimit
	}

	return models.StatusUnder
}

// categoryStatus is Classify, except that any spending in a category
// without a planned amount is OVER.
func categoryStatus(spent, planned decimal.Decimal) models.Status {
	if planned.IsZero() && spent.IsPositive() {
		return models.StatusOver
	}

	return Classify(spent, planned)
}

// percentUsed returns spent as a percentage of planned, rounded to an integer.
func percentUsed(spent, planned decimal.Decimal) decimal.Decimal {
	if planned.IsZero() {
		return decimal.Zero
	}

	return spent.Div(planned).Mul(hundred).Round(0)
}
