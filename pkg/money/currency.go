package money

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// ErrInvalidCurrency is returned for strings that are not ISO 4217 currency codes.
var ErrInvalidCurrency = errors.New("not a valid ISO 4217 currency code")

// ParseCurrency validates an ISO 4217 code and returns it in canonical
// upper case form.
func ParseCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}

	return unit.String(), nil
}

func pairKey(from, to string) string {
	return from + "_" + to
}
