// file: internals/features/events/reminders/route/reminder_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "voluntarios_backend/internals/features/events/reminders/controller"
	"voluntarios_backend/internals/features/events/reminders/service"
)

// Base: /api/cron - protegido pelo X-Cron-Secret
func ReminderCronRoutes(group fiber.Router, reminders *service.ReminderService) {
	ctrl := controller.NewReminderController(reminders)
	group.Post("/reminders/process", ctrl.ProcessReminders)
}
