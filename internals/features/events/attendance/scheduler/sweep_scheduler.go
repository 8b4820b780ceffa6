package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"voluntarios_backend/internals/features/events/attendance/service"
)

// StartAbsenceSweepScheduler roda a varredura de faltas em loop, como rede
// de segurança caso o cron externo falhe. Intervalo via env (default: 10min).
func StartAbsenceSweepScheduler(sweep *service.SweepService) {
	go func() {
		intervalMin := 10
		if val := os.Getenv("SWEEP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		for {
			time.Sleep(time.Duration(intervalMin) * time.Minute)

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			report, err := sweep.SweepAbsences(ctx, time.Now())
			cancel()
			if err != nil {
				log.Printf("[SWEEP ERROR] %v", err)
				continue
			}
			if report.MarkedAbsent > 0 {
				log.Printf("[SWEEP] %s", report.String())
			}
		}
	}()
}
