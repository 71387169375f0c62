package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DebtStrategy is the order in which debts get paid off.
type DebtStrategy string

const (
	Snowball  DebtStrategy = "snowball"  // smallest outstanding principal first
	Avalanche DebtStrategy = "avalanche" // highest interest rate first
)

// ParseDebtStrategy parses a debt strategy, ignoring case.
func ParseDebtStrategy(s string) (DebtStrategy, error) {
	switch d := DebtStrategy(strings.ToLower(strings.TrimSpace(s))); d {
	case Snowball, Avalanche:
		return d, nil
	}

	return "", fmt.Errorf("%w, got %q", ErrInvalidDebtStrategy, s)
}

// BucketPercentages are the shares of income planned for each bucket, in percent.
type BucketPercentages struct {
	Needs   decimal.Decimal `json:"needs" example:"50"`
	Wants   decimal.Decimal `json:"wants" example:"20"`
	Savings decimal.Decimal `json:"savings" example:"15"`
	Debt    decimal.Decimal `json:"debt" example:"15"`
}

// Of returns the percentage for a bucket type.
func (p BucketPercentages) Of(t BucketType) decimal.Decimal {
	switch t {
	case Needs:
		return p.Needs
	case Wants:
		return p.Wants
	case Savings:
		return p.Savings
	case Debt:
		return p.Debt
	}

	return decimal.Zero
}

// Sum returns the sum of all bucket percentages.
func (p BucketPercentages) Sum() decimal.Decimal {
	return p.Needs.Add(p.Wants).Add(p.Savings).Add(p.Debt)
}

// LiabilityOriginPolicy weighs savings between the country of residence,
// the home country and global investments. The weights conventionally sum to 1.
type LiabilityOriginPolicy struct {
	Home   decimal.Decimal `json:"home" example:"0.3"`
	Local  decimal.Decimal `json:"local" example:"0.5"`
	Global decimal.Decimal `json:"global" example:"0.2"`
}

// RuleSet configures how income is allocated.
type RuleSet struct {
	StrategyType        string                `json:"strategyType" example:"50/20/15/15"`
	Buckets             BucketPercentages     `json:"buckets"`
	MinSavingsPercent   decimal.Decimal       `json:"minSavingsPercent" example:"10"`
	MinDebtPercent      decimal.Decimal       `json:"minDebtPercent" example:"5"`
	LiabilityOrigin     LiabilityOriginPolicy `json:"liabilityOriginPolicy"`
	EmergencyFundMonths int                   `json:"emergencyFundMonths" example:"6"`
	DebtStrategy        DebtStrategy          `json:"debtStrategy" example:"avalanche"`
}

// DefaultRuleSet returns the rule set used when none is configured.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		StrategyType: "50/20/15/15",
		Buckets: BucketPercentages{
			Needs:   decimal.NewFromInt(50),
			Wants:   decimal.NewFromInt(20),
			Savings: decimal.NewFromInt(15),
			Debt:    decimal.NewFromInt(15),
		},
		MinSavingsPercent: decimal.NewFromInt(10),
		MinDebtPercent:    decimal.NewFromInt(5),
		LiabilityOrigin: LiabilityOriginPolicy{
			Home:   decimal.RequireFromString("0.3"),
			Local:  decimal.RequireFromString("0.5"),
			Global: decimal.RequireFromString("0.2"),
		},
		EmergencyFundMonths: 6,
		DebtStrategy:        Avalanche,
	}
}
