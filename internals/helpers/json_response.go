package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Success envelopes
=================================*/

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func jsonSuccess(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// JsonList wraps list payloads; pagination may be nil for unpaged lists.
func JsonList(c *fiber.Ctx, data interface{}, pagination interface{}) error {
	body := fiber.Map{
		"code":   fiber.StatusOK,
		"status": "success",
		"data":   data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

/* ===============================
   Error envelopes
=================================*/

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// JsonValidationError renders validator.v10 field errors as a field→tag map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

// JsonFromError maps service/repository errors to the HTTP envelope.
func JsonFromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, "Record not found")
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrUnknownCurriculum),
		IsValidationErr(err):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
