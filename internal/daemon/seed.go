package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/uniuri"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed an initial admin account and a default journal on first start.

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		password := uniuri.New()

		admin := models.User{
			Email:      "admin@" + cfg.Webserver.Domain,
			Password:   models.HashPassword(password),
			Active:     true,
			GivenName:  "Site",
			FamilyName: "Administrator",
			Roles: []models.UserRole{
				{RoleName: "Site Administrator", RolePath: models.RoleAdmin},
			},
		}
		if result := db.Create(&admin); result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to seed admin account")
		} else {
			// The generated password is only ever printed here.
			log.Warn().
				Str("email", admin.Email).
				Str("password", password).
				Msg("created initial admin account, change the password after first login")
		}
	}

	db.Model(&models.Journal{}).Count(&count)
	if count == 0 {
		journal := models.Journal{
			Path:          "default",
			Title:         cfg.Title,
			PrimaryLocale: models.DefaultLocale,
		}
		if result := db.Create(&journal); result.Error != nil {
			log.Error().Err(result.Error).Msg("failed to seed default journal")
		}
	}
}
