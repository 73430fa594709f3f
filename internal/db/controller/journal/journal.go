// Package journal provides read operations for journal records.
package journal

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

var (
	// ErrJournalNotFound is returned when a journal is not found.
	ErrJournalNotFound = errors.New("journal not found")
	// ErrJournalIDEmpty is returned when an empty journal id is given.
	ErrJournalIDEmpty = errors.New("journal id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a journal by its ID.
func Get(db *gorm.DB, id string) (*models.Journal, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrJournalIDEmpty
	}

	var j models.Journal
	result := db.Where("id = ?", id).First(&j)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, result.Error
	}

	return &j, nil
}

// ResolvePrimaryLocale returns the journal's primary locale. A missing
// journal, an empty locale column or a lookup failure all fall back to
// models.DefaultLocale; resolution is never fatal.
func ResolvePrimaryLocale(db *gorm.DB, journalID string) string {
	j, err := Get(db, journalID)
	if err != nil || j.PrimaryLocale == "" {
		return models.DefaultLocale
	}

	return j.PrimaryLocale
}
