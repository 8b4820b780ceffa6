package middlewares

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"voluntarios_backend/internals/configs"
)

// CronAuthMiddleware protege os endpoints disparados por cron externo.
// O agendador manda o segredo no header X-Cron-Secret.
func CronAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.CronSecret
		if secret == "" {
			log.Println("[WARNING] CRON_SECRET não configurado, bloqueando chamada de cron")
			return fiber.NewError(fiber.StatusServiceUnavailable, "Cron desabilitado")
		}
		got := c.Get("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Segredo de cron inválido")
		}
		return c.Next()
	}
}
