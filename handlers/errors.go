// handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecoverse/services"
)

// serviceError maps a business error to its JSON envelope and status code.
func serviceError(c *fiber.Ctx, err error) error {
	status := 500
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = 404
	case errors.Is(err, services.ErrInsufficientEnergy),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrAlreadyCompleted),
		errors.Is(err, services.ErrAlreadyOwned),
		errors.Is(err, services.ErrRotationUnavailable):
		status = 400
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
