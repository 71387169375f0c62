// Package money implements currency-aware amounts and the exchange rate
// cache used to normalize them into a plan's base currency.
package money

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount in its original currency together with its
// value in a base currency.
//
// BaseAmount is always Amount * FXRate at the time of creation. FXRate and
// FXTimestamp record where the value came from and are never recomputed.
type Money struct {
	Amount      decimal.Decimal `json:"amount" example:"100"`
	Currency    string          `json:"currency" example:"USD"`
	BaseAmount  decimal.Decimal `json:"baseAmount" example:"367.25"`
	FXRate      decimal.Decimal `json:"fxRate" example:"3.6725"`
	FXTimestamp time.Time       `json:"fxTimestamp" example:"2024-05-01T10:11:12Z"`
}

// New creates Money for an amount that has been converted with rate.
func New(amount decimal.Decimal, currency string, rate Rate) Money {
	return Money{
		Amount:      amount,
		Currency:    currency,
		BaseAmount:  amount.Mul(rate.Rate),
		FXRate:      rate.Rate,
		FXTimestamp: rate.Timestamp,
	}
}

// Base creates Money that is already denominated in the base currency.
func Base(amount decimal.Decimal, currency string, t time.Time) Money {
	return New(amount, currency, Rate{Rate: decimal.NewFromInt(1), Timestamp: t})
}

// Zero returns zero Money in the given currency.
func Zero(currency string, t time.Time) Money {
	return Base(decimal.Zero, currency, t)
}

// Normalizer converts amounts into a base currency.
type Normalizer interface {
	CreateMoney(ctx context.Context, amount decimal.Decimal, currency, base string) Money
}
