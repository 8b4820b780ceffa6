// file: internals/features/home/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "voluntarios_backend/internals/features/home/notifications/controller"
)

// Base: /api/u
func NotificationUserRoutes(group fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)
	group.Get("/notifications", ctrl.GetMyNotifications)
	group.Patch("/notifications/:id/read", ctrl.MarkAsRead)
	group.Post("/push-subscriptions", ctrl.Subscribe)
	group.Delete("/push-subscriptions", ctrl.Unsubscribe)
}
