package models

import (
	"fmt"
	"strings"

	"github.com/envelope-zero/planner/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// BucketType is one of the four top-level parts a budget is split into.
type BucketType string

const (
	Needs   BucketType = "NEEDS"
	Wants   BucketType = "WANTS"
	Savings BucketType = "SAVINGS"
	Debt    BucketType = "DEBT"
)

// BucketTypes lists all bucket types in display order.
var BucketTypes = []BucketType{Needs, Wants, Savings, Debt}

// ParseBucketType parses a bucket type, ignoring case.
func ParseBucketType(s string) (BucketType, error) {
	b := BucketType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range BucketTypes {
		if b == t {
			return b, nil
		}
	}

	return "", fmt.Errorf("%w, got %q", ErrInvalidBucket, s)
}

// Status describes spending relative to the planned amount.
type Status string

const (
	StatusUnder     Status = "UNDER"
	StatusNearLimit Status = "NEAR_LIMIT"
	StatusOver      Status = "OVER"
)

// CategoryBudget is the planned and actual spending for one category in a bucket.
type CategoryBudget struct {
	Name      string          `json:"name" example:"groceries"`
	Planned   decimal.Decimal `json:"planned" example:"833.33"`
	Spent     decimal.Decimal `json:"spent" example:"600"`
	Remaining decimal.Decimal `json:"remaining" example:"233.33"` // Planned - Spent
	Status    Status          `json:"status" example:"UNDER"`
}

// Bucket is the planned and actual spending for a bucket type.
//
// All amounts are in the base currency of the plan.
type Bucket struct {
	Type       BucketType                 `json:"type" example:"NEEDS"`
	Planned    money.Money                `json:"planned"`
	Spent      money.Money                `json:"spent"`
	Remaining  money.Money                `json:"remaining"`
	Status     Status                     `json:"status" example:"UNDER"`
	Categories map[string]*CategoryBudget `json:"categories"`
}

// Clone returns a deep copy of the bucket.
func (b *Bucket) Clone() *Bucket {
	c := *b
	c.Categories = make(map[string]*CategoryBudget, len(b.Categories))
	for name, cat := range b.Categories {
		cc := *cat
		c.Categories[name] = &cc
	}

	return &c
}

// CategoryNames returns the names of all categories, sorted.
func (b *Bucket) CategoryNames() []string {
	names := make([]string, 0, len(b.Categories))
	for name := range b.Categories {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// CategoryLists holds the fixed category names for each bucket type.
type CategoryLists map[BucketType][]string

// DefaultCategories returns the built-in category lists.
func DefaultCategories() CategoryLists {
	return CategoryLists{
		Needs:   {"rent", "utilities", "groceries", "transport", "insurance", "healthcare"},
		Wants:   {"dining", "entertainment", "shopping", "travel", "subscriptions"},
		Savings: {"emergency_fund", "investments", "retirement"},
		Debt:    {"credit_card", "loans", "other_debt"},
	}
}
