// file: internals/helpers/token.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Lê user_id de c.Locals("user_id").
// 401 se não logado, 400 se o formato for inválido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID do token inválido")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID do token inválido")
	}
}

// Lê o papel (admin | lider | voluntario) de c.Locals("userRole").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Token sem informação de papel")
	}
	return role, nil
}

// Lê o departamento do líder de c.Locals("department_id").
// Líder sem departamento não pode confirmar presença (401).
func GetDepartmentIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals("department_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Token sem departamento vinculado")
	}

	switch t := v.(type) {
	case int64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Token sem departamento vinculado")
		}
		return t, nil
	case float64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Token sem departamento vinculado")
		}
		return int64(t), nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil || id <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Token sem departamento vinculado")
		}
		return id, nil
	default:
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Token sem departamento vinculado")
	}
}
