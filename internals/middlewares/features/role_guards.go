package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"disciplehub_backend/internals/constants"
	helperAuth "disciplehub_backend/internals/helpers/auth"
)

// RequirePathScopeMatch rejects requests whose :church_id path param
// does not match the token's active church. Routes without the param
// pass through; the repositories still scope every query themselves.
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := strings.TrimSpace(c.Params("church_id"))
		if param == "" {
			return c.Next()
		}
		pathID, err := uuid.Parse(param)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid church_id")
		}
		activeID, err := helperAuth.GetActiveChurchID(c)
		if err != nil {
			return err
		}
		if pathID != activeID {
			return fiber.NewError(fiber.StatusForbidden, "Church scope mismatch")
		}
		return c.Next()
	}
}

// IsTeacherOrAbove gates discipleship management endpoints.
func IsTeacherOrAbove(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsTeacherOrAbove(helperAuth.GetChurchRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

// IsManagerOrAbove gates church administration endpoints.
func IsManagerOrAbove(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsManagerOrAbove(helperAuth.GetChurchRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorManager(feature))
		}
		return c.Next()
	}
}

// IsPastor gates billing and destructive tenant operations.
func IsPastor(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsPastor(helperAuth.GetChurchRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorPastor(feature))
		}
		return c.Next()
	}
}

// IsOwnerGlobal gates platform-level endpoints (tenant provisioning).
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsOwnerGlobal(helperAuth.GetChurchRole(c)) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner("platform administration"))
		}
		return c.Next()
	}
}
