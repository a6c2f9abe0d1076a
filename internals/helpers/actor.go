package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ActorID resolves who performed a mutation for the audit trail.
// Identity is trusted from the x-user-id header (no token scheme), falling
// back to the acting party from the request body, then "system".
func ActorID(c *fiber.Ctx, fallback ...string) string {
	if id := strings.TrimSpace(c.Get("x-user-id")); id != "" {
		return id
	}
	for _, f := range fallback {
		if strings.TrimSpace(f) != "" {
			return f
		}
	}
	return "system"
}
