// Package login issues bearer tokens for accounts with a valid password.
package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/auth"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/config"
	"github.com/GoJournal-Admin/GoJournal-Admin/internal/web/handler"
)

// Path is the path of the login endpoint.
const Path = handler.APIPath + "/auth/login"

var validate = validator.New()

type request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service is the login handler service.
type Service struct {
	cfg  *config.Config
	auth *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.auth = auth.NewService(db)

	app.Post(Path, s.Post)

	return nil
}

// Post handles the login request and returns a bearer token.
func (s *Service) Post(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "A valid email and a password are required")
	}

	user, err := s.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return handler.Fail(c, fiber.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, auth.ErrAccountInactive):
			return handler.Fail(c, fiber.StatusUnauthorized, "Account is inactive")
		default:
			log.Error().Err(err).Msg("login failed")
			return handler.Fail(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	token, err := auth.IssueToken(s.cfg.Webserver.JWTSecret, user.ID, s.cfg.Webserver.Token.ExpiryTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		return handler.Fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.OK(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"givenName":  user.GivenName,
			"familyName": user.FamilyName,
		},
	})
}
