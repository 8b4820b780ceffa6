// file: internals/features/events/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"voluntarios_backend/internals/constants"
	controller "voluntarios_backend/internals/features/events/attendance/controller"
	"voluntarios_backend/internals/features/events/attendance/service"
	authMiddleware "voluntarios_backend/internals/middlewares/auth"
)

// Base: /api/u - confirmação exige papel de líder (ou admin)
func AttendanceUserRoutes(group fiber.Router, attendance *service.AttendanceService, sweep *service.SweepService) {
	ctrl := controller.NewAttendanceController(attendance, sweep)
	group.Post("/attendance/confirm",
		authMiddleware.OnlyRoles(constants.RoleErrorLeader("confirmação de presença"),
			constants.RoleLider, constants.RoleAdmin),
		ctrl.ConfirmAttendance)
}

// Base: /api/cron - protegido pelo X-Cron-Secret
func AttendanceCronRoutes(group fiber.Router, attendance *service.AttendanceService, sweep *service.SweepService) {
	ctrl := controller.NewAttendanceController(attendance, sweep)
	group.Post("/attendance/process", ctrl.ProcessAbsences)
}
