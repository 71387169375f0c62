package models

import (
	"github.com/envelope-zero/planner/internal/types"
	"github.com/shopspring/decimal"
)

// IncomeSource is a source of monthly income. Inactive sources are
// ignored when planning.
type IncomeSource struct {
	Name     string          `json:"name" example:"Salary"`
	Amount   decimal.Decimal `json:"amount" example:"10000"`
	Currency string          `json:"currency" example:"AED"`
	Active   bool            `json:"active" example:"true"`
}

// DebtInput is an outstanding debt. All amounts are in Currency.
type DebtInput struct {
	Name                 string          `json:"name" example:"Credit card"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal" example:"12000"`
	InterestRateAnnual   decimal.Decimal `json:"interestRateAnnual" example:"24.5"`
	MinMonthlyPayment    decimal.Decimal `json:"minMonthlyPayment" example:"500"`
	Currency             string          `json:"currency" example:"AED"`
	Country              string          `json:"country" example:"AE"`
}

// Goal is a savings goal. Both amounts are in Currency.
type Goal struct {
	Name          string          `json:"name" example:"New car"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"50000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"12500"`
	Currency      string          `json:"currency" example:"AED"`
	TargetDate    types.Date      `json:"targetDate" example:"2026-12-01"`
	Country       string          `json:"country" example:"IN"`
}
