package models

import "time"

// Role path identifiers assigned to user accounts.
const (
	RoleAdmin         = "admin"
	RoleManager       = "manager"
	RoleEditor        = "editor"
	RoleSectionEditor = "section_editor"
	RoleReviewer      = "reviewer"
	RoleAuthor        = "author"
	RoleReader        = "reader"
)

// UserRole represents one role held by a user account, optionally scoped
// to a journal. A missing ContextID means the role is site wide (the
// admin role is typically site wide).
type UserRole struct {
	// ID is the unique identifier for the role assignment.
	ID uint64 `gorm:"primaryKey"`
	// UserID is the account holding the role.
	UserID string `gorm:"type:varchar(36);not null;index"`
	// RoleName is a human-readable role label (e.g. "Journal Manager").
	RoleName string `gorm:"size:100"`
	// RolePath is the role identifier checked by authorization (e.g. "editor").
	RolePath string `gorm:"size:50;not null"`
	// ContextID is the journal the role applies to, empty for site wide roles.
	ContextID string `gorm:"type:varchar(36);index"`
	// CreatedAt is the timestamp when the role was assigned (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_account_roles"
}
