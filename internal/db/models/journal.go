// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLocale is used whenever a journal has no primary locale on record.
const DefaultLocale = "en_US"

// Journal represents a hosted journal, the tenant entity that owns
// settings, submissions and user roles.
type Journal struct {
	// ID is the unique identifier for the journal.
	ID string `gorm:"type:varchar(36);primaryKey"`
	// Path is the unique URL slug of the journal.
	Path string `gorm:"unique;size:100;not null"`
	// Title is the journal title shown in listings.
	Title string `gorm:"size:255"`
	// PrimaryLocale is the journal's default language tag (e.g. en_US).
	// It seeds locale resolution for journal settings.
	PrimaryLocale string `gorm:"size:14;not null;default:'en_US'"`
	// CreatedAt is the timestamp when the journal was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the journal was last updated (managed by GORM).
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none was given.
func (j *Journal) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}

	return nil
}
