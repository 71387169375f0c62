package money

import "github.com/shopspring/decimal"

// defaultRates are used when no live rate can be fetched. Rates are
// stored for one direction only, the inverse is derived.
var defaultRates = map[string]decimal.Decimal{
	pairKey("USD", "AED"): decimal.RequireFromString("3.6725"),
	pairKey("USD", "SAR"): decimal.RequireFromString("3.75"),
	pairKey("USD", "EUR"): decimal.RequireFromString("0.92"),
	pairKey("USD", "GBP"): decimal.RequireFromString("0.79"),
	pairKey("USD", "INR"): decimal.RequireFromString("83.2"),
	pairKey("USD", "PKR"): decimal.RequireFromString("278.5"),
	pairKey("EUR", "AED"): decimal.RequireFromString("3.99"),
	pairKey("GBP", "AED"): decimal.RequireFromString("4.65"),
	pairKey("AED", "INR"): decimal.RequireFromString("22.65"),
	pairKey("AED", "PKR"): decimal.RequireFromString("75.8"),
	pairKey("AED", "SAR"): decimal.RequireFromString("1.021"),
}

// inversePrecision is the number of decimal places for derived inverse rates.
const inversePrecision = 8

// DefaultRate returns the static fallback rate for a currency pair.
// The second return value is false if the pair is not in the table.
func DefaultRate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}

	if r, ok := defaultRates[pairKey(from, to)]; ok {
		return r, true
	}

	if r, ok := defaultRates[pairKey(to, from)]; ok {
		return decimal.NewFromInt(1).DivRound(r, inversePrecision), true
	}

	return decimal.Decimal{}, false
}
