// Package daemon boots the service: logging, database, migrations, seed
// data and the web service.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/dsn"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/logger"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// openDB opens the configured database engine with gorm.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case "postgres":
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case "sqlite":
		dialector = sqlite.Open(cfg.DB.Name)
	default:
		dialector = gormmysql.Open(dsn.Create(cfg))
	}

	return gorm.Open(dialector, &gorm.Config{})
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("engine", cfg.DB.Engine).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Journal{},
		&models.JournalSetting{},
		&models.Submission{},
		&models.SubmissionVersion{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}
