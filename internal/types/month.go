// Package types implements special types for the planner.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrMonthFormat is returned when a month string is not in YYYY-MM format.
var ErrMonthFormat = errors.New("month must be in YYYY-MM format")

var monthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// Month is a month in a specific year.
//
// It is always set to 00:00 UTC on the first day of the month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("%w, got %q", ErrMonthFormat, s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w, got %q", ErrMonthFormat, s)
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in YYYY-MM format.
func (m *Month) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	if value == "" {
		return nil
	}

	parsed, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseMonth(v)
		*m = parsed
		return err
	case []byte:
		parsed, err := ParseMonth(string(v))
		*m = parsed
		return err
	case time.Time:
		*m = MonthOf(v)
		return nil
	}

	return fmt.Errorf("cannot scan %T into Month", value)
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "text"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Time(m).AddDate(0, 1, -1).Day()
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// MonthsUntil returns the number of calendar months from m to n,
// ignoring days. It is negative when n is before m.
func (m Month) MonthsUntil(n Month) int {
	return (n.Year()-m.Year())*12 + int(n.Month()) - int(m.Month())
}
