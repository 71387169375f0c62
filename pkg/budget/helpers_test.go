package budget_test

import (
	"testing"
	"time"

	"github.com/envelope-zero/planner/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal compares decimals by value, ignoring their exponent.
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), append([]interface{}{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

// withoutIdentity strips the fields of insights that differ between runs.
func withoutIdentity(insights []models.Insight) []models.Insight {
	out := make([]models.Insight, 0, len(insights))
	for _, i := range insights {
		i.ID = uuid.Nil
		i.CreatedAt = time.Time{}
		out = append(out, i)
	}

	return out
}
