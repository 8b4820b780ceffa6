// file: internals/features/organization/volunteers/route/volunteer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventService "voluntarios_backend/internals/features/events/events/service"
	controller "voluntarios_backend/internals/features/organization/volunteers/controller"
)

// Base: /api/u
func VolunteerUserRoutes(group fiber.Router, db *gorm.DB, activeEvents *eventService.ActiveEventService) {
	ctrl := controller.NewVolunteerController(db, activeEvents)
	group.Get("/volunteers", ctrl.GetAllVolunteers)
	group.Get("/volunteers/:id/qr", ctrl.GetQRPayload)
}

// Base: /api/a
func VolunteerAdminRoutes(group fiber.Router, db *gorm.DB, activeEvents *eventService.ActiveEventService) {
	ctrl := controller.NewVolunteerController(db, activeEvents)
	group.Post("/volunteers", ctrl.CreateVolunteer)
	group.Put("/volunteers/:id", ctrl.UpdateVolunteer)
	group.Delete("/volunteers/:id", ctrl.DeleteVolunteer)
}
