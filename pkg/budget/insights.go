package budget

import (
	"fmt"
	"time"

	"github.com/envelope-zero/planner/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	savingsPaceShare = decimal.RequireFromString("0.5")
	goalCloseToDone  = decimal.NewFromInt(75)
)

// bucketInsight returns an insight if the bucket is over or near its limit.
func bucketInsight(b *models.Bucket, base string, now time.Time) (models.Insight, bool) {
	used := percentUsed(b.Spent.BaseAmount, b.Planned.BaseAmount)

	switch b.Status {
	case models.StatusOver:
		return models.NewInsight(
			models.InsightAlert,
			fmt.Sprintf("You are over your %s budget: %s%% used (%s of %s %s)", b.Type, used, b.Spent.BaseAmount.StringFixed(2), b.Planned.BaseAmount.StringFixed(2), base),
			b.Type, "", now,
		), true
	case models.StatusNearLimit:
		return models.NewInsight(
			models.InsightWarning,
			fmt.Sprintf("You have used %s%% of your %s budget", used, b.Type),
			b.Type, "", now,
		), true
	}

	return models.Insight{}, false
}

// categoryInsight returns an insight if the category is over budget.
func categoryInsight(bucket models.BucketType, c *models.CategoryBudget, base string, now time.Time) (models.Insight, bool) {
	if c.Status != models.StatusOver {
		return models.Insight{}, false
	}

	return models.NewInsight(
		models.InsightAlert,
		fmt.Sprintf("You are over budget for %s in %s by %s %s", c.Name, bucket, c.Remaining.Neg().StringFixed(2), base),
		bucket, c.Name, now,
	), true
}

// GenerateInsights derives all insights for the current state of a plan.
//
// The plan is not modified. Calling it twice for an unchanged plan returns
// the same insights apart from their IDs and timestamps.
func GenerateInsights(p models.Plan, now time.Time) []models.Insight {
	insights := []models.Insight{}

	for _, t := range models.BucketTypes {
		b, ok := p.Buckets[t]
		if !ok {
			continue
		}

		if i, ok := bucketInsight(b, p.BaseCurrency, now); ok {
			insights = append(insights, i)
		}

		for _, name := range b.CategoryNames() {
			if i, ok := categoryInsight(t, b.Categories[name], p.BaseCurrency, now); ok {
				insights = append(insights, i)
			}
		}
	}

	if b, ok := p.Buckets[models.Savings]; ok && savingsOnTrack(b, now) {
		insights = append(insights, models.NewInsight(
			models.InsightInfo,
			fmt.Sprintf("Your savings are on track, %s %s of %s %s still to be set aside this month", b.Remaining.BaseAmount.StringFixed(2), p.BaseCurrency, b.Planned.BaseAmount.StringFixed(2), p.BaseCurrency),
			models.Savings, "", now,
		))
	}

	for _, g := range p.Goals {
		switch {
		case g.ProgressPercent.GreaterThanOrEqual(hundred):
			insights = append(insights, models.NewInsight(
				models.InsightSuccess,
				fmt.Sprintf("Congratulations, you reached your goal %q", g.Name),
				"", "", now,
			))
		case g.ProgressPercent.GreaterThanOrEqual(goalCloseToDone):
			insights = append(insights, models.NewInsight(
				models.InsightInfo,
				fmt.Sprintf("You are %s%% of the way to your goal %q, keep going", g.ProgressPercent.Round(0), g.Name),
				"", "", now,
			))
		}
	}

	return insights
}

// savingsOnTrack reports if less than half of the planned savings have
// been used and the current day is past the middle of the month.
func savingsOnTrack(b *models.Bucket, now time.Time) bool {
	if !b.Spent.BaseAmount.LessThan(b.Planned.BaseAmount.Mul(savingsPaceShare)) {
		return false
	}

	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return now.Day()*2 > days
}
