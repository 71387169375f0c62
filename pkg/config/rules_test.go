package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/envelope-zero/planner/pkg/config"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesEmptyPath(t *testing.T) {
	rules, err := config.LoadRules("")
	require.Nil(t, err)
	assert.Equal(t, config.DefaultRules(), rules)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := config.LoadRules(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.Nil(t, os.WriteFile(path, []byte(`
[rules]
strategy_type = "60/20/10/10"
min_savings_percent = 12.5
debt_strategy = "snowball"

[buckets]
needs = 60
wants = 20
savings = 10
debt = 10

[liability_origin]
home = 0.4

[categories]
wants = ["dining", "hobbies"]
`), 0o600))

	rules, err := config.LoadRules(path)
	require.Nil(t, err)

	r := rules.RuleSet
	assert.Equal(t, "60/20/10/10", r.StrategyType)
	assert.Equal(t, "12.5", r.MinSavingsPercent.String())
	assert.Equal(t, models.Snowball, r.DebtStrategy)
	assert.Equal(t, "60", r.Buckets.Needs.String())
	assert.Equal(t, "10", r.Buckets.Debt.String())
	assert.Equal(t, "0.4", r.LiabilityOrigin.Home.String())

	defaults := models.DefaultRuleSet()
	assert.True(t, defaults.MinDebtPercent.Equal(r.MinDebtPercent), "unset values keep their default")
	assert.True(t, defaults.LiabilityOrigin.Local.Equal(r.LiabilityOrigin.Local))
	assert.Equal(t, defaults.EmergencyFundMonths, r.EmergencyFundMonths)

	assert.Equal(t, []string{"dining", "hobbies"}, rules.Categories[models.Wants])
	assert.Equal(t, models.DefaultCategories()[models.Needs], rules.Categories[models.Needs])
}

func TestParseRulesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"Bad strategy", "[rules]\ndebt_strategy = \"lottery\"", models.ErrInvalidDebtStrategy},
		{"Bad bucket", "[categories]\nfun = [\"games\"]", models.ErrInvalidBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseRules([]byte(tt.data))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := config.ParseRules([]byte("[rules"))
	assert.NotNil(t, err)
}
