package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"voluntarios_backend/internals/features/events/reminders/service"
	helper "voluntarios_backend/internals/helpers"
)

type ReminderController struct {
	Reminders *service.ReminderService
}

func NewReminderController(reminders *service.ReminderService) *ReminderController {
	return &ReminderController{Reminders: reminders}
}

// 🟢 POST /api/cron/reminders/process
func (ctrl *ReminderController) ProcessReminders(c *fiber.Ctx) error {
	report, err := ctrl.Reminders.ProcessReminders(c.UserContext(), time.Now())
	if err != nil {
		log.Printf("[ERROR] Lembretes abortados: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar lembretes")
	}

	msg := fmt.Sprintf("%d evento(s), %d lembrete(s) enviado(s)", report.ProcessedEvents, report.RemindersSent)
	return helper.JsonOK(c, msg, report)
}
