package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/apperr"
)

// OK writes a JSON success envelope. Extra fields are merged next to "ok".
func OK(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}

	return c.JSON(body)
}

// FailErr maps a tagged error onto the HTTP taxonomy. Untagged errors are
// logged and reported as internal.
func FailErr(c *fiber.Ctx, err error) error {
	var tagged *apperr.Error
	if errors.As(err, &tagged) {
		return Fail(c, tagged.Kind.Status(), tagged.Message)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled api error")

	return Fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// Fail writes a JSON error envelope with the given HTTP status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"ok":    false,
		"error": message,
	})
}
