package models

import (
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionTypeOf infers the type from the sign of the amount:
// negative amounts are income, all others are expenses.
func TransactionTypeOf(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TransactionIncome
	}

	return TransactionExpense
}

// Transaction is a single logged transaction. It is never modified after creation.
type Transaction struct {
	ID           uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	UserID       string          `json:"userId" example:"user-42"`
	BudgetPlanID uuid.UUID       `json:"budgetPlanId" example:"3d2b6d1e-5b8b-4c9d-9c36-0f84ab3f7a1d"`
	Month        types.Month     `json:"month" example:"2024-05"`
	Type         TransactionType `json:"type" example:"expense"`
	Money        money.Money     `json:"money"`
	Category     string          `json:"category" example:"groceries"`
	Bucket       BucketType      `json:"bucket" example:"NEEDS"`
	Description  string          `json:"description" example:"Weekly shopping"`
	Date         time.Time       `json:"date" example:"2024-05-14T00:00:00Z"`
	Tags         []string        `json:"tags" example:"family"`
	CreatedAt    time.Time       `json:"createdAt" example:"2024-05-14T19:28:44.491514Z"`
	UpdatedAt    time.Time       `json:"updatedAt" example:"2024-05-14T19:28:44.491514Z"`
}
