package budget

import (
	"context"
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/shopspring/decimal"
)

// ProjectGoals computes the monthly contribution and progress for each goal.
//
// Goals that are due this month or overdue get a contribution of zero.
func ProjectGoals(ctx context.Context, n money.Normalizer, goals []models.Goal, base string, now time.Time) []models.GoalSnapshot {
	snapshots := make([]models.GoalSnapshot, 0, len(goals))

	for _, g := range goals {
		currency := currencyOr(g.Currency, base)
		target := n.CreateMoney(ctx, g.TargetAmount, currency, base)
		current := n.CreateMoney(ctx, g.CurrentAmount, currency, base)

		months := types.MonthOf(now).MonthsUntil(types.MonthOf(g.TargetDate.Time()))
		if months < 0 {
			months = 0
		}

		contribution := decimal.Zero
		if months > 0 {
			contribution = target.BaseAmount.Sub(current.BaseAmount).Div(decimal.NewFromInt(int64(months)))
		}

		progress := decimal.Zero
		if !target.BaseAmount.IsZero() {
			progress = current.BaseAmount.Div(target.BaseAmount).Mul(hundred)
		}

		snapshots = append(snapshots, models.GoalSnapshot{
			Name:                g.Name,
			Country:             g.Country,
			Target:              target,
			Current:             current,
			TargetDate:          g.TargetDate,
			MonthsRemaining:     months,
			MonthlyContribution: contribution,
			ProgressPercent:     progress,
		})
	}

	return snapshots
}
