package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit record for a submission. Entries are
// created on every editorial action and never mutated or deleted.
type ActivityLog struct {
	ID uint64 `gorm:"primaryKey"`
	// SubmissionID is the submission the entry belongs to.
	SubmissionID string `gorm:"type:varchar(36);not null;index"`
	// ActorID is the account that performed the action, empty for system actions.
	ActorID string `gorm:"type:varchar(36);index"`
	// Category groups entries (e.g. "publication").
	Category string `gorm:"size:50;not null"`
	// Message is the human-readable description of the action.
	Message string `gorm:"type:text"`
	// Metadata captures structured details, such as which fields changed.
	Metadata datatypes.JSON
	// CreatedAt is the timestamp when the entry was written (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the ActivityLog model.
func (ActivityLog) TableName() string {
	return "submission_activity_logs"
}
