package models

import (
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DebtSnapshot is a debt as planned for one month. Amounts are in the
// base currency of the plan, Currency is the currency of the original debt.
type DebtSnapshot struct {
	Name                 string          `json:"name" example:"Credit card"`
	Currency             string          `json:"currency" example:"AED"`
	Country              string          `json:"country" example:"AE"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal" example:"12000"`
	InterestRateAnnual   decimal.Decimal `json:"interestRateAnnual" example:"24.5"`
	MinMonthlyPayment    decimal.Decimal `json:"minMonthlyPayment" example:"500"`
	AllocatedPayment     decimal.Decimal `json:"allocatedPayment" example:"1500"`
	IsMinimumPayment     bool            `json:"isMinimumPayment" example:"false"`
}

// GoalSnapshot is the projection of a savings goal for one month.
type GoalSnapshot struct {
	Name                string          `json:"name" example:"New car"`
	Country             string          `json:"country" example:"IN"`
	Target              money.Money     `json:"target"`
	Current             money.Money     `json:"current"`
	TargetDate          types.Date      `json:"targetDate" example:"2026-12-01"`
	MonthsRemaining     int             `json:"monthsRemaining" example:"19"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"1973.68"`
	ProgressPercent     decimal.Decimal `json:"progressPercent" example:"25"`
}

// SavingsSplit divides the planned savings by liability origin.
type SavingsSplit struct {
	LocalEmergencyFund decimal.Decimal `json:"localEmergencyFund" example:"750"`
	HomeInvestments    decimal.Decimal `json:"homeInvestments" example:"450"`
	GlobalInvestments  decimal.Decimal `json:"globalInvestments" example:"300"`
}

// DebtSplit divides the allocated debt payments by the currency of the debt.
type DebtSplit struct {
	BaseCurrencyDebt decimal.Decimal `json:"baseCurrencyDebt" example:"1500"`
	HomeCountryDebt  decimal.Decimal `json:"homeCountryDebt" example:"500"`
	OtherDebt        decimal.Decimal `json:"otherDebt" example:"0"`
}

// Plan is the budget plan of a user for one month.
type Plan struct {
	ID           uuid.UUID              `json:"id" example:"3d2b6d1e-5b8b-4c9d-9c36-0f84ab3f7a1d"`
	UserID       string                 `json:"userId" example:"user-42"`
	Month        types.Month            `json:"month" example:"2024-05"`
	BaseCurrency string                 `json:"baseCurrency" example:"AED"`
	TotalIncome  money.Money            `json:"totalIncome"`
	RuleSet      RuleSet                `json:"ruleSet"`
	Buckets      map[BucketType]*Bucket `json:"buckets"`
	Debts        []DebtSnapshot         `json:"debtsSnapshot"`
	Goals        []GoalSnapshot         `json:"goalsSnapshot"`
	Insights     []Insight              `json:"insights"`
	CreatedAt    time.Time              `json:"createdAt" example:"2024-05-01T19:28:44.491514Z"`
	UpdatedAt    time.Time              `json:"updatedAt" example:"2024-05-17T20:14:01.048145Z"`
}

// Bucket returns the bucket of type t, creating an empty one if it does
// not exist yet.
func (p *Plan) Bucket(t BucketType) *Bucket {
	if p.Buckets == nil {
		p.Buckets = make(map[BucketType]*Bucket, len(BucketTypes))
	}

	b, ok := p.Buckets[t]
	if !ok {
		zero := money.Zero(p.BaseCurrency, p.UpdatedAt)
		b = &Bucket{
			Type:       t,
			Planned:    zero,
			Spent:      zero,
			Remaining:  zero,
			Status:     StatusUnder,
			Categories: make(map[string]*CategoryBudget),
		}
		p.Buckets[t] = b
	}

	return b
}

// SavingsSplit returns the savings bucket split by the liability origin weights.
// The weights are used as they are, even if they do not sum to 1.
func (p Plan) SavingsSplit() SavingsSplit {
	planned := decimal.Zero
	if b, ok := p.Buckets[Savings]; ok {
		planned = b.Planned.BaseAmount
	}

	return SavingsSplit{
		LocalEmergencyFund: planned.Mul(p.RuleSet.LiabilityOrigin.Local),
		HomeInvestments:    planned.Mul(p.RuleSet.LiabilityOrigin.Home),
		GlobalInvestments:  planned.Mul(p.RuleSet.LiabilityOrigin.Global),
	}
}

// DebtSplit returns the allocated debt payments split by currency.
//
// Debts in the base currency count as base currency debt, all others as
// home country debt. OtherDebt is always zero.
func (p Plan) DebtSplit() DebtSplit {
	split := DebtSplit{
		BaseCurrencyDebt: decimal.Zero,
		HomeCountryDebt:  decimal.Zero,
		OtherDebt:        decimal.Zero,
	}

	for _, d := range p.Debts {
		if d.Currency == p.BaseCurrency {
			split.BaseCurrencyDebt = split.BaseCurrencyDebt.Add(d.AllocatedPayment)
			continue
		}
		split.HomeCountryDebt = split.HomeCountryDebt.Add(d.AllocatedPayment)
	}

	return split
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	c := p

	if p.Buckets != nil {
		c.Buckets = make(map[BucketType]*Bucket, len(p.Buckets))
		for t, b := range p.Buckets {
			c.Buckets[t] = b.Clone()
		}
	}

	c.Debts = slices.Clone(p.Debts)
	c.Goals = slices.Clone(p.Goals)
	c.Insights = slices.Clone(p.Insights)

	return c
}
