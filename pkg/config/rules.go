package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/shopspring/decimal"
)

// Rules is the budget configuration of the engine.
type Rules struct {
	RuleSet    models.RuleSet
	Categories models.CategoryLists
}

// rulesFile is the layout of the TOML rules file. Every field is optional.
type rulesFile struct {
	Rules struct {
		StrategyType        *string  `toml:"strategy_type"`
		MinSavingsPercent   *float64 `toml:"min_savings_percent"`
		MinDebtPercent      *float64 `toml:"min_debt_percent"`
		EmergencyFundMonths *int     `toml:"emergency_fund_months"`
		DebtStrategy        *string  `toml:"debt_strategy"`
	} `toml:"rules"`
	Buckets struct {
		Needs   *float64 `toml:"needs"`
		Wants   *float64 `toml:"wants"`
		Savings *float64 `toml:"savings"`
		Debt    *float64 `toml:"debt"`
	} `toml:"buckets"`
	LiabilityOrigin struct {
		Home   *float64 `toml:"home"`
		Local  *float64 `toml:"local"`
		Global *float64 `toml:"global"`
	} `toml:"liability_origin"`
	Categories map[string][]string `toml:"categories"`
}

// DefaultRules returns the built-in rule set and categories.
func DefaultRules() Rules {
	return Rules{
		RuleSet:    models.DefaultRuleSet(),
		Categories: models.DefaultCategories(),
	}
}

// LoadRules reads the rules file at path. Values missing from the file
// keep their defaults. An empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("reading rules file: %w", err)
	}

	return ParseRules(data)
}

// ParseRules parses the contents of a rules file on top of the defaults.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()

	var f rulesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return rules, fmt.Errorf("parsing rules file: %w", err)
	}

	r := &rules.RuleSet
	if f.Rules.StrategyType != nil {
		r.StrategyType = *f.Rules.StrategyType
	}
	setDecimal(&r.MinSavingsPercent, f.Rules.MinSavingsPercent)
	setDecimal(&r.MinDebtPercent, f.Rules.MinDebtPercent)
	if f.Rules.EmergencyFundMonths != nil {
		r.EmergencyFundMonths = *f.Rules.EmergencyFundMonths
	}
	if f.Rules.DebtStrategy != nil {
		strategy, err := models.ParseDebtStrategy(*f.Rules.DebtStrategy)
		if err != nil {
			return rules, fmt.Errorf("parsing rules file: %w", err)
		}
		r.DebtStrategy = strategy
	}

	setDecimal(&r.Buckets.Needs, f.Buckets.Needs)
	setDecimal(&r.Buckets.Wants, f.Buckets.Wants)
	setDecimal(&r.Buckets.Savings, f.Buckets.Savings)
	setDecimal(&r.Buckets.Debt, f.Buckets.Debt)

	setDecimal(&r.LiabilityOrigin.Home, f.LiabilityOrigin.Home)
	setDecimal(&r.LiabilityOrigin.Local, f.LiabilityOrigin.Local)
	setDecimal(&r.LiabilityOrigin.Global, f.LiabilityOrigin.Global)

	for name, categories := range f.Categories {
		t, err := models.ParseBucketType(name)
		if err != nil {
			return rules, fmt.Errorf("parsing rules file: categories: %w", err)
		}
		rules.Categories[t] = append([]string(nil), categories...)
	}

	return rules, nil
}

func setDecimal(target *decimal.Decimal, value *float64) {
	if value != nil {
		*target = decimal.NewFromFloat(*value)
	}
}
