package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the JWT middleware.
const (
	LocUserID         = "user_id"
	LocActiveChurchID = "active_church_id"
	LocChurchRole     = "church_role"
	LocRawToken       = "raw_token"
)

// GetUserID returns the authenticated user id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not authenticated")
	}
	return id, nil
}

// GetActiveChurchID returns the tenant scope of the request. Every
// repository call downstream must carry this id.
func GetActiveChurchID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocActiveChurchID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Active church scope missing")
	}
	return id, nil
}

// GetChurchRole returns the caller's role within the active church,
// defaulting to member when the claim is absent.
func GetChurchRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocChurchRole).(string); ok && strings.TrimSpace(s) != "" {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return "member"
}

// SetRawAccessToken stores the verified raw token for reuse downstream.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetRawAccessToken returns the bearer token from cookie, Locals, or the
// Authorization header, in that order.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	authz := c.Get(fiber.HeaderAuthorization)
	if len(authz) > len(p) && strings.HasPrefix(authz, p) {
		return strings.TrimSpace(authz[len(p):])
	}
	return ""
}
