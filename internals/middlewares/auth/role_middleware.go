// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "akademiku_backend/internals/helpers"
)

// RequireRoles: lolos kalau actor punya minimal satu role yang diminta.
// Dipasang setelah AuthMiddleware (butuh locals user_id/roles).
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := helper.GetActorFromToken(c)
		if err != nil {
			return err
		}
		for _, r := range roles {
			if actor.HasRole(r) {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
}
