package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"voluntarios_backend/internals/features/events/reminders/service"
)

// StartReminderScheduler roda os lembretes em loop (default: a cada 15min).
func StartReminderScheduler(reminders *service.ReminderService) {
	go func() {
		intervalMin := 15
		if val := os.Getenv("REMINDER_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		for {
			time.Sleep(time.Duration(intervalMin) * time.Minute)

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			report, err := reminders.ProcessReminders(ctx, time.Now())
			cancel()
			if err != nil {
				log.Printf("[REMINDER ERROR] %v", err)
				continue
			}
			if report.RemindersSent > 0 {
				log.Printf("[REMINDER] %d lembrete(s) enviado(s)", report.RemindersSent)
			}
		}
	}()
}
