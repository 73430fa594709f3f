package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission version lifecycle states.
const (
	VersionStatusDraft     = "draft"
	VersionStatusScheduled = "scheduled"
	VersionStatusPublished = "published"
)

// SubmissionVersion is one editable/publishable revision of a submission's
// publication record. Metadata is mutable pre-publish; once the status is
// published only editor roles may change it.
type SubmissionVersion struct {
	// ID is the unique identifier for the version.
	ID string `gorm:"type:varchar(36);primaryKey"`
	// SubmissionID is the owning submission.
	SubmissionID string `gorm:"type:varchar(36);not null;index"`
	// Version is the 1-based revision number.
	Version int `gorm:"not null;default:1"`
	// Status is one of draft, scheduled or published.
	Status string `gorm:"size:20;not null;default:'draft'"`
	// Metadata is the free-form publication metadata blob (title, abstract,
	// keywords, authors, identifiers, ...).
	Metadata datatypes.JSON
	// Notes is an optional description of what changed in this revision.
	Notes string `gorm:"type:text"`
	// PublishedAt is the publication (or scheduled publication) date.
	PublishedAt *time.Time
	// CreatedAt is the timestamp when the version was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the version was last updated (managed by GORM).
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none was given.
func (v *SubmissionVersion) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	return nil
}
