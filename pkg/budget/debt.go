package budget

import (
	"context"

	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// debtSnapshots converts debts into the base currency.
func debtSnapshots(ctx context.Context, n money.Normalizer, debts []models.DebtInput, base string) []models.DebtSnapshot {
	snapshots := make([]models.DebtSnapshot, 0, len(debts))
	for _, d := range debts {
		currency := currencyOr(d.Currency, base)
		snapshots = append(snapshots, models.DebtSnapshot{
			Name:                 d.Name,
			Currency:             currency,
			Country:              d.Country,
			OutstandingPrincipal: n.CreateMoney(ctx, d.OutstandingPrincipal, currency, base).BaseAmount,
			InterestRateAnnual:   d.InterestRateAnnual,
			MinMonthlyPayment:    n.CreateMoney(ctx, d.MinMonthlyPayment, currency, base).BaseAmount,
		})
	}

	return snapshots
}

// MinimumPayments returns the sum of all minimum payments.
func MinimumPayments(debts []models.DebtSnapshot) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range debts {
		sum = sum.Add(d.MinMonthlyPayment)
	}

	return sum
}

// SortDebts orders debts by payoff priority. The sort is stable, so debts
// with equal keys keep their input order.
func SortDebts(debts []models.DebtSnapshot, strategy models.DebtStrategy) {
	switch strategy {
	case models.Snowball:
		slices.SortStableFunc(debts, func(a, b models.DebtSnapshot) int {
			return a.OutstandingPrincipal.Cmp(b.OutstandingPrincipal)
		})
	default:
		slices.SortStableFunc(debts, func(a, b models.DebtSnapshot) int {
			return b.InterestRateAnnual.Cmp(a.InterestRateAnnual)
		})
	}
}

// PlanDebts assigns budget to the debts.
//
// The debts are walked in priority order with a running remaining budget.
// Every debt gets its minimum payment. The first debt additionally gets
// whatever is left of the budget after its own minimum, up to its
// outstanding principal. No other debt gets more than its minimum.
func PlanDebts(debts []models.DebtSnapshot, strategy models.DebtStrategy, budget decimal.Decimal) []models.DebtSnapshot {
	planned := append([]models.DebtSnapshot(nil), debts...)
	SortDebts(planned, strategy)

	remaining := budget
	for i := range planned {
		d := &planned[i]
		d.AllocatedPayment = d.MinMonthlyPayment
		remaining = remaining.Sub(d.MinMonthlyPayment)

		if i == 0 && remaining.IsPositive() {
			extra := decimal.Min(remaining, d.OutstandingPrincipal)
			d.AllocatedPayment = d.AllocatedPayment.Add(extra)
			remaining = remaining.Sub(extra)
		}

		d.IsMinimumPayment = d.AllocatedPayment.Equal(d.MinMonthlyPayment)
	}

	return planned
}
