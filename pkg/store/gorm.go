package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/envelope-zero/planner/internal/types"
	"github.com/envelope-zero/planner/pkg/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDatabase replaces database errors that users cannot do anything about.
var ErrDatabase = errors.New("there is a problem with the database connection")

// planRecord stores a plan as JSON, keyed by user and month.
type planRecord struct {
	UserID    string      `gorm:"primaryKey"`
	Month     types.Month `gorm:"primaryKey"`
	PlanID    uuid.UUID
	Plan      models.Plan `gorm:"serializer:json;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (planRecord) TableName() string {
	return "plans"
}

// transactionRecord stores a transaction as JSON, keyed by its ID.
type transactionRecord struct {
	ID          uuid.UUID          `gorm:"primaryKey"`
	UserID      string             `gorm:"index"`
	PlanID      uuid.UUID          `gorm:"index"`
	Transaction models.Transaction `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time
}

func (transactionRecord) TableName() string {
	return "transactions"
}

// Gorm is a Store backed by a SQLite database.
type Gorm struct {
	db *gorm.DB
}

// OpenSQLite opens the SQLite database at dsn, migrates it and returns a store for it.
func OpenSQLite(dsn string) (*Gorm, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and keeps
	// in-memory databases alive between queries.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	for _, cb := range []struct {
		name     string
		register func(string, func(*gorm.DB)) error
	}{
		{"planner:after_query_general", db.Callback().Query().After("*").Register},
		{"planner:after_create_general", db.Callback().Create().After("*").Register},
		{"planner:after_update_general", db.Callback().Update().After("*").Register},
	} {
		if err := cb.register(cb.name, generalCallback); err != nil {
			return nil, err
		}
	}

	if err := db.AutoMigrate(planRecord{}, transactionRecord{}); err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &Gorm{db: db}, nil
}

// generalCallback handles errors that users cannot get any helpful message for.
// The error is logged and replaced with ErrDatabase.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrDatabase
	}
}

// Close closes the underlying database connection.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (g *Gorm) Plan(ctx context.Context, userID string, month types.Month) (models.Plan, bool, error) {
	var r planRecord
	err := g.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, month).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Plan{}, false, nil
	} else if err != nil {
		return models.Plan{}, false, fmt.Errorf("loading plan: %w", err)
	}

	return r.Plan, true, nil
}

// Plans returns all plans of a user, sorted by month.
func (g *Gorm) Plans(ctx context.Context, userID string) ([]models.Plan, error) {
	var records []planRecord
	err := g.db.WithContext(ctx).Where("user_id = ?", userID).Order("month ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}

	plans := make([]models.Plan, 0, len(records))
	for _, r := range records {
		plans = append(plans, r.Plan)
	}

	return plans, nil
}

// SavePlan inserts the plan or replaces the existing plan for the same user and month.
func (g *Gorm) SavePlan(ctx context.Context, plan models.Plan) error {
	return savePlan(g.db.WithContext(ctx), plan)
}

func savePlan(tx *gorm.DB, plan models.Plan) error {
	r := planRecord{
		UserID: plan.UserID,
		Month:  plan.Month,
		PlanID: plan.ID,
		Plan:   plan,
	}

	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&r).Error; err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	return nil
}

func (g *Gorm) Transaction(ctx context.Context, id uuid.UUID) (models.Transaction, bool, error) {
	var r transactionRecord
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, false, nil
	} else if err != nil {
		return models.Transaction{}, false, fmt.Errorf("loading transaction: %w", err)
	}

	return r.Transaction, true, nil
}

// SaveTransaction inserts the transaction and saves the plan in one
// database transaction.
func (g *Gorm) SaveTransaction(ctx context.Context, transaction models.Transaction, plan models.Plan) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := savePlan(tx, plan); err != nil {
			return err
		}

		r := transactionRecord{
			ID:          transaction.ID,
			UserID:      transaction.UserID,
			PlanID:      transaction.BudgetPlanID,
			Transaction: transaction,
		}

		if err := tx.Create(&r).Error; err != nil {
			return fmt.Errorf("saving transaction: %w", err)
		}

		return nil
	})
}

func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	return nil
}
