// Package store persists budget plans and transactions.
package store

import (
	"context"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/google/uuid"
)

// Store is the persistence layer for the budget engine.
//
// There is at most one plan per user and month, saving a plan replaces
// the previous one for the same key. Lookups report absent entries with
// false instead of an error.
//
// SaveTransaction stores a transaction together with the plan it has been
// applied to. Either both are saved or neither is.
type Store interface {
	Plan(ctx context.Context, userID string, month types.Month) (models.Plan, bool, error)
	Plans(ctx context.Context, userID string) ([]models.Plan, error)
	SavePlan(ctx context.Context, plan models.Plan) error
	Transaction(ctx context.Context, id uuid.UUID) (models.Transaction, bool, error)
	SaveTransaction(ctx context.Context, transaction models.Transaction, plan models.Plan) error
	Ping(ctx context.Context) error
}

// planKey is the key of a plan in the store.
func planKey(userID string, month types.Month) string {
	return userID + "/" + month.String()
}
