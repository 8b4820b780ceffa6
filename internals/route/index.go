// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntarios_backend/internals/configs"
	"voluntarios_backend/internals/constants"
	"voluntarios_backend/internals/middlewares"
	authMiddleware "voluntarios_backend/internals/middlewares/auth"

	attendanceRoute "voluntarios_backend/internals/features/events/attendance/route"
	attendanceService "voluntarios_backend/internals/features/events/attendance/service"
	eventRoute "voluntarios_backend/internals/features/events/events/route"
	eventService "voluntarios_backend/internals/features/events/events/service"
	reminderRoute "voluntarios_backend/internals/features/events/reminders/route"
	reminderService "voluntarios_backend/internals/features/events/reminders/service"
	swapRoute "voluntarios_backend/internals/features/events/swaps/route"
	swapService "voluntarios_backend/internals/features/events/swaps/service"
	notifRoute "voluntarios_backend/internals/features/home/notifications/route"
	notifService "voluntarios_backend/internals/features/home/notifications/service"
	departmentRoute "voluntarios_backend/internals/features/organization/departments/route"
	volunteerRoute "voluntarios_backend/internals/features/organization/volunteers/route"
	authRoute "voluntarios_backend/internals/features/users/auth/route"
)

var startTime time.Time

// Services compartilhados entre rotas e schedulers.
type AppServices struct {
	ActiveEvents *eventService.ActiveEventService
	Notify       *notifService.NotifyService
	Attendance   *attendanceService.AttendanceService
	Sweep        *attendanceService.SweepService
	WhatsApp     *notifService.WhatsAppService
	Reminders    *reminderService.ReminderService
	Swaps        *swapService.SwapService
}

func BuildServices(db *gorm.DB) *AppServices {
	loc := configs.Location()

	push := notifService.NewPushService(db)
	notify := notifService.NewNotifyService(db, push)
	wa := notifService.NewWhatsAppService()

	return &AppServices{
		ActiveEvents: eventService.NewActiveEventService(db, loc),
		Notify:       notify,
		Attendance:   attendanceService.NewAttendanceService(db, notify),
		Sweep:        attendanceService.NewSweepService(db, loc, notify),
		WhatsApp:     wa,
		Reminders:    reminderService.NewReminderService(db, loc, wa, reminderLead()),
		Swaps:        swapService.NewSwapService(db, notify),
	}
}

func reminderLead() time.Duration {
	if v := os.Getenv("REMINDER_LEAD_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return 2 * time.Hour
}

func SetupRoutes(app *fiber.App, db *gorm.DB, svcs *AppServices) {
	startTime = time.Now()

	log.Println("[INFO] Registrando rotas base...")
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Registrando rotas de autenticação...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Registrando grupo /api/u...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	authRoute.AuthUserRoutes(user, db)
	departmentRoute.DepartmentUserRoutes(user, db)
	volunteerRoute.VolunteerUserRoutes(user, db, svcs.ActiveEvents)
	eventRoute.EventUserRoutes(user, db, svcs.ActiveEvents)
	attendanceRoute.AttendanceUserRoutes(user, svcs.Attendance, svcs.Sweep)
	swapRoute.SwapUserRoutes(user, db, svcs.Swaps)
	notifRoute.NotificationUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Registrando grupo /api/a...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("este recurso"), constants.RoleAdmin),
	)

	authRoute.AuthAdminRoutes(admin, db)
	departmentRoute.DepartmentAdminRoutes(admin, db)
	volunteerRoute.VolunteerAdminRoutes(admin, db, svcs.ActiveEvents)
	eventRoute.EventAdminRoutes(admin, db, svcs.ActiveEvents)

	// ===================== CRON =====================
	log.Println("[INFO] Registrando grupo /api/cron...")
	cron := app.Group("/api/cron", middlewares.CronAuthMiddleware())

	attendanceRoute.AttendanceCronRoutes(cron, svcs.Attendance, svcs.Sweep)
	reminderRoute.ReminderCronRoutes(cron, svcs.Reminders)
}
