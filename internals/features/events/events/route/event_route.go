// file: internals/features/events/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "voluntarios_backend/internals/features/events/events/controller"
	"voluntarios_backend/internals/features/events/events/service"
)

// Base: /api/u
func EventUserRoutes(group fiber.Router, db *gorm.DB, activeEvents *service.ActiveEventService) {
	ctrl := controller.NewEventController(db, activeEvents)
	group.Get("/events", ctrl.GetAllEvents)
	group.Get("/events/active", ctrl.GetActiveEvent)
}

// Base: /api/a
func EventAdminRoutes(group fiber.Router, db *gorm.DB, activeEvents *service.ActiveEventService) {
	ctrl := controller.NewEventController(db, activeEvents)
	group.Post("/events", ctrl.CreateEvent)
	group.Patch("/events/:id/status", ctrl.UpdateEventStatus)
	group.Post("/events/:id/schedule", ctrl.ScheduleVolunteers)
	group.Delete("/events/:id", ctrl.DeleteEvent)
}
