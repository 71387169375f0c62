package models

import (
	"time"

	"github.com/google/uuid"
)

// InsightType is the severity of an insight.
type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightAlert   InsightType = "alert"
	InsightInfo    InsightType = "info"
	InsightSuccess InsightType = "success"
)

// Insight is an advisory message about the state of a budget plan.
type Insight struct {
	ID        uuid.UUID   `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Type      InsightType `json:"type" example:"alert"`
	Message   string      `json:"message" example:"You are over budget for groceries in NEEDS by 66.67 AED"`
	Bucket    *BucketType `json:"bucket,omitempty" example:"NEEDS"`
	Category  *string     `json:"category,omitempty" example:"groceries"`
	CreatedAt time.Time   `json:"createdAt" example:"2024-05-17T20:14:01.048145Z"`
}

// NewInsight creates an insight. bucket and category may be empty.
func NewInsight(t InsightType, message string, bucket BucketType, category string, now time.Time) Insight {
	i := Insight{
		ID:        uuid.New(),
		Type:      t,
		Message:   message,
		CreatedAt: now,
	}

	if bucket != "" {
		i.Bucket = &bucket
	}

	if category != "" {
		i.Category = &category
	}

	return i
}
