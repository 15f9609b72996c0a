package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// handleServiceError maps service errors to the standard error envelope.
// resource names the thing that was not found; fallback is the message for
// unexpected failures, which are logged.
func handleServiceError(c *fiber.Ctx, logger *logrus.Logger, err error, resource, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrUnauthorized):
		return unauthorized(c)
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to perform this action")
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(fallback)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
}

func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pathParam returns a percent-decoded route parameter. Fiber leaves params
// escaped unless the app enables UnescapePath.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

func unauthorized(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication credentials were not provided")
}
