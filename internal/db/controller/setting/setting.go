// Package setting implements the locale-aware journal settings store.
// Each setting is one row keyed by (journal_id, setting_name, locale);
// the empty locale marks the locale-independent default. Reads resolve a
// locale-specific row over the locale-independent one, writes are upserts
// on the triple.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

// Setting type hints stored alongside values. Advisory only, the store
// never enforces them.
const (
	TypeString = "string"
	TypeBool   = "bool"
	TypeInt    = "int"
	TypeObject = "object"
)

var (
	// ErrSettingNameEmpty is returned when attempting to write a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrJournalIDEmpty is returned when an empty journal id is given.
	ErrJournalIDEmpty = errors.New("journal id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Resolved is one resolved setting value.
type Resolved struct {
	Value string
	Type  string
	// Locale the value was resolved from, the empty string for the
	// locale-independent default row.
	Locale string
}

// Values maps setting names to their resolved values. Names without a row
// are absent; callers apply their own defaults.
type Values map[string]Resolved

// Read fetches all rows for journalID whose name is in names and whose
// locale is either the given locale or empty, and resolves each name:
// the locale-specific row wins over the locale-independent one.
func Read(db *gorm.DB, journalID string, names []string, locale string) (Values, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if journalID == "" {
		return nil, ErrJournalIDEmpty
	}

	var rows []models.JournalSetting
	result := db.
		Where("journal_id = ?", journalID).
		Where("setting_name IN ?", names).
		Where("locale IN ?", []string{locale, ""}).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make(Values, len(rows))
	for _, row := range rows {
		// locale-specific beats the locale-independent default
		if existing, ok := values[row.SettingName]; ok && existing.Locale == locale {
			continue
		}

		values[row.SettingName] = Resolved{
			Value:  row.SettingValue,
			Type:   row.SettingType,
			Locale: row.Locale,
		}
	}

	return values, nil
}

// Write upserts one row keyed by (journalID, name, locale).
func Write(db *gorm.DB, journalID, name, value, settingType, locale string) error {
	if db == nil {
		return ErrDBNil
	}
	if journalID == "" {
		return ErrJournalIDEmpty
	}
	if name == "" {
		return ErrSettingNameEmpty
	}

	if settingType == "" {
		settingType = TypeString
	}

	row := models.JournalSetting{
		JournalID:    journalID,
		SettingName:  name,
		SettingValue: value,
		SettingType:  settingType,
		Locale:       locale,
	}

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "journal_id"},
			{Name: "setting_name"},
			{Name: "locale"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_type"}),
	}).Create(&row)

	return result.Error
}

// GroupWrite is one pending write of a settings group.
type GroupWrite struct {
	Name   string
	Value  string
	Type   string
	Locale string
}

// GroupResult aggregates the outcome of a group write. Writes already
// applied stay committed when a later one fails; there is no rollback.
type GroupResult struct {
	// Applied lists the names written successfully, in order.
	Applied []string
	// FailedName is the first (or each, with continue-on-error) failing name.
	FailedName string
	// Err is the first error encountered.
	Err error
}

// WriteGroup applies the writes sequentially. By default it stops at the
// first failing upsert and reports its name; with continueOnError it keeps
// going and still reports the first failure.
func WriteGroup(db *gorm.DB, journalID string, writes []GroupWrite, continueOnError bool) GroupResult {
	var res GroupResult

	for _, w := range writes {
		if err := Write(db, journalID, w.Name, w.Value, w.Type, w.Locale); err != nil {
			if res.Err == nil {
				res.FailedName = w.Name
				res.Err = err
			}

			if !continueOnError {
				return res
			}

			continue
		}

		res.Applied = append(res.Applied, w.Name)
	}

	return res
}
