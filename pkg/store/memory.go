package store

import (
	"context"
	"strings"
	"sync"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Memory is a Store that keeps everything in memory.
//
// Plans are copied on the way in and out so that callers never share
// state with the store.
type Memory struct {
	mu           sync.RWMutex
	plans        map[string]models.Plan
	transactions map[uuid.UUID]models.Transaction
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		plans:        make(map[string]models.Plan),
		transactions: make(map[uuid.UUID]models.Transaction),
	}
}

func (m *Memory) Plan(_ context.Context, userID string, month types.Month) (models.Plan, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.plans[planKey(userID, month)]
	if !ok {
		return models.Plan{}, false, nil
	}

	return p.Clone(), true, nil
}

// Plans returns all plans of a user, sorted by month.
func (m *Memory) Plans(_ context.Context, userID string) ([]models.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plans := []models.Plan{}
	for _, p := range m.plans {
		if p.UserID == userID {
			plans = append(plans, p.Clone())
		}
	}

	slices.SortFunc(plans, func(a, b models.Plan) int {
		return strings.Compare(a.Month.String(), b.Month.String())
	})

	return plans, nil
}

func (m *Memory) SavePlan(_ context.Context, plan models.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.plans[planKey(plan.UserID, plan.Month)] = plan.Clone()
	return nil
}

func (m *Memory) Transaction(_ context.Context, id uuid.UUID) (models.Transaction, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transactions[id]
	return t, ok, nil
}

func (m *Memory) SaveTransaction(_ context.Context, transaction models.Transaction, plan models.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	transaction.Tags = append([]string(nil), transaction.Tags...)
	m.transactions[transaction.ID] = transaction
	m.plans[planKey(plan.UserID, plan.Month)] = plan.Clone()
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}
