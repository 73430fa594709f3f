package models

// JournalSetting represents one named configuration value of a journal,
// optionally scoped to a locale. The empty locale marks the
// locale-independent default row. At most one row exists per
// (journal_id, setting_name, locale) triple; writes are upserts on it.
type JournalSetting struct {
	ID uint64 `gorm:"primaryKey"`
	// JournalID is the owning journal.
	JournalID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_journal_setting,priority:1"`
	// SettingName is the string key, unique per (journal, locale).
	SettingName string `gorm:"size:255;not null;uniqueIndex:idx_journal_setting,priority:2"`
	// SettingValue is the string payload. It may itself encode JSON, a
	// stringified boolean ("1"/"0"/"true"/"false") or an integer.
	SettingValue string `gorm:"type:text"`
	// SettingType is an advisory type hint (string, bool, int, object).
	// The store never enforces it.
	SettingType string `gorm:"size:10;not null;default:'string'"`
	// Locale is a locale tag (e.g. en_US) or the empty string meaning
	// locale-independent.
	Locale string `gorm:"size:14;not null;default:'';uniqueIndex:idx_journal_setting,priority:3"`
}

// TableName specifies the database table name for the JournalSetting model.
func (JournalSetting) TableName() string {
	return "journal_settings"
}
