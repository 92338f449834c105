// file: internals/helpers/actor.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor: identitas dari token, diisi oleh auth middleware.
// Engine tidak melakukan cek otorisasi sendiri; caller sudah diverifikasi.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// Ambil actor dari c.Locals("user_id") + c.Locals("roles").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetActorFromToken(c *fiber.Ctx) (Actor, error) {
	id, err := parseLocalUUID(c.Locals("user_id"))
	if err != nil {
		return Actor{}, err
	}

	var roles []string
	switch t := c.Locals("roles").(type) {
	case []string:
		roles = t
	case []interface{}:
		for _, v := range t {
			if s, ok := v.(string); ok {
				roles = append(roles, s)
			}
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			roles = strings.Split(s, ",")
		}
	}

	return Actor{ID: id, Roles: roles}, nil
}

// GetUserIDFromToken: shortcut lama, masih dipakai route user.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return parseLocalUUID(c.Locals("user_id"))
}

func parseLocalUUID(v interface{}) (uuid.UUID, error) {
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}
}

// ParseUUIDParam: path param -> uuid, 400 kalau invalid.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
