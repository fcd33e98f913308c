package handlers

import (
	"errors"
	"log"

	"cookbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps service-layer errors onto the HTTP error
// taxonomy: field validation → 400 with per-field errors, state conflicts →
// 400 with a single message, missing resources → 404, authorization → 403.
func respondServiceError(c *fiber.Ctx, err error) error {
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
		})
	case errors.Is(err, services.ErrRecipeNotExist),
		errors.Is(err, services.ErrAlreadyInList),
		errors.Is(err, services.ErrRelationNotExist),
		errors.Is(err, services.ErrSelfSubscribe),
		errors.Is(err, services.ErrAlreadySubscribed),
		errors.Is(err, services.ErrNotSubscribed),
		errors.Is(err, services.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": err.Error(),
		})
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Registration failed",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"errors": err.Error(),
		})
	case errors.Is(err, services.ErrBlocked), errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errors": err.Error(),
		})
	}

	log.Printf("Unhandled service error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
