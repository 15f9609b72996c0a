package middleware

import (
	"strings"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const claimsKey = "claims"

// Authenticate reads an optional "Authorization: Bearer <token>" header
// (the "Token" scheme is accepted too). Requests without the header pass
// through anonymously; a header that does not verify is rejected.
func Authenticate(tokens *services.TokenManager, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return c.Next()
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || token == "" || !(strings.EqualFold(scheme, "Bearer") || strings.EqualFold(scheme, "Token")) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid authorization header")
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			message := "Invalid token"
			if services.IsTokenExpired(err) {
				message = "Token has expired"
			}
			logger.WithError(err).WithField("path", c.Path()).Debug("Rejected token")
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, message)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUserID(c); !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication credentials were not provided")
		}
		return c.Next()
	}
}

// Claims returns the verified token claims, or nil for anonymous requests.
func Claims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}

func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	claims := Claims(c)
	if claims == nil {
		return 0, false
	}
	return claims.UserID, true
}

// ViewerID is CurrentUserID shaped for the annotated catalog reads.
func ViewerID(c *fiber.Ctx) *uint {
	if id, ok := CurrentUserID(c); ok {
		return &id
	}
	return nil
}
