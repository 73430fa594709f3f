// Package activitylog provides the append-only submission audit trail.
package activitylog

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

var (
	// ErrSubmissionIDEmpty is returned when an empty submission id is given.
	ErrSubmissionIDEmpty = errors.New("submission id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Append writes one audit entry. Entries are never mutated or deleted.
// The metadata argument is marshalled to JSON; a nil metadata stores null.
func Append(db *gorm.DB, submissionID, actorID, category, message string, metadata any) error {
	if db == nil {
		return ErrDBNil
	}
	if submissionID == "" {
		return ErrSubmissionIDEmpty
	}

	entry := models.ActivityLog{
		SubmissionID: submissionID,
		ActorID:      actorID,
		Category:     category,
		Message:      message,
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}

		entry.Metadata = datatypes.JSON(raw)
	}

	return db.Create(&entry).Error
}

// BySubmission lists the audit entries of a submission, newest first.
func BySubmission(db *gorm.DB, submissionID string) ([]models.ActivityLog, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if submissionID == "" {
		return nil, ErrSubmissionIDEmpty
	}

	var entries []models.ActivityLog
	result := db.
		Where("submission_id = ?", submissionID).
		Order("created_at DESC, id DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
