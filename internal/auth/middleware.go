package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoJournal-Admin/GoJournal-Admin/internal/db/models"
)

// CurrentUserKey is the fiber.Locals key holding the resolved caller.
const CurrentUserKey = "CurrentUser"

// Middleware resolves the caller from the Authorization bearer token and
// stores the account in fiber.Locals. Requests without a valid token pass
// through without an identity; handlers decide whether one is required.
func Middleware(service *Service, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.Next()
		}

		userID, err := ParseToken(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}

		user, err := service.UserByID(userID)
		if err != nil {
			return c.Next()
		}

		c.Locals(CurrentUserKey, user)

		return c.Next()
	}
}

// CurrentUser returns the caller resolved by Middleware, if any.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(CurrentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}
