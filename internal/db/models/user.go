package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// User represents a user account in the system. A user can hold any number
// of roles, each optionally scoped to a journal via the role's context.
type User struct {
	// ID is the unique identifier for the user.
	ID string `gorm:"type:varchar(36);primaryKey"`
	// Active indicates whether the user account is active and can log in.
	Active bool
	// Email is the unique email address used for login.
	Email string `gorm:"unique;size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// GivenName is the user's first or given name.
	GivenName string `gorm:"size:100"`
	// FamilyName is the user's last or family name.
	FamilyName string `gorm:"size:100"`
	// Roles are the account roles assigned to this user.
	Roles []UserRole `gorm:"foreignKey:UserID;references:ID"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none was given.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	return nil
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating user passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
