package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission represents a manuscript submitted to a journal. The editable
// publication record lives in SubmissionVersion rows; the submission keeps
// the canonical title in sync with the latest metadata edit.
type Submission struct {
	// ID is the unique identifier for the submission.
	ID string `gorm:"type:varchar(36);primaryKey"`
	// JournalID is the journal the submission belongs to.
	JournalID string `gorm:"type:varchar(36);not null;index"`
	// AuthorID is the account that created the submission.
	AuthorID string `gorm:"type:varchar(36);not null;index"`
	// Title is the submission title, synced from metadata edits.
	Title string `gorm:"type:text"`
	// CreatedAt is the timestamp when the submission was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the submission was last updated (managed by GORM).
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none was given.
func (s *Submission) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	return nil
}
