package budget

import (
	"time"

	"github.com/envelope-zero/planner/pkg/models"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/shopspring/decimal"
)

// ApplyTransaction adds amount, in the base currency of the plan, to the
// spent totals of a bucket and one of its categories.
//
// Unknown categories are created with nothing planned. The insights that the
// new state triggers are appended to the plan and returned.
func ApplyTransaction(p *models.Plan, bucket models.BucketType, category string, amount decimal.Decimal, now time.Time) []models.Insight {
	b := p.Bucket(bucket)

	spent := b.Spent.BaseAmount.Add(amount)
	b.Spent = money.Base(spent, p.BaseCurrency, now)
	b.Remaining = money.Base(b.Planned.BaseAmount.Sub(spent), p.BaseCurrency, now)
	b.Status = Classify(spent, b.Planned.BaseAmount)

	c, ok := b.Categories[category]
	if !ok {
		c = &models.CategoryBudget{
			Name:    category,
			Planned: decimal.Zero,
			Spent:   decimal.Zero,
		}
		b.Categories[category] = c
	}

	c.Spent = c.Spent.Add(amount)
	c.Remaining = c.Planned.Sub(c.Spent)
	c.Status = categoryStatus(c.Spent, c.Planned)

	insights := []models.Insight{}
	if i, ok := bucketInsight(b, p.BaseCurrency, now); ok {
		insights = append(insights, i)
	}

	if i, ok := categoryInsight(bucket, c, p.BaseCurrency, now); ok {
		insights = append(insights, i)
	}

	p.Insights = append(p.Insights, insights...)
	p.UpdatedAt = now

	return insights
}
