// file: internals/features/events/swaps/route/swap_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "voluntarios_backend/internals/features/events/swaps/controller"
	"voluntarios_backend/internals/features/events/swaps/service"
)

// Base: /api/u
func SwapUserRoutes(group fiber.Router, db *gorm.DB, swaps *service.SwapService) {
	ctrl := controller.NewSwapController(db, swaps)
	group.Get("/swaps", ctrl.GetMySwaps)
	group.Post("/swaps", ctrl.CreateSwap)
	group.Post("/swaps/:id/accept", ctrl.AcceptSwap)
	group.Post("/swaps/:id/refuse", ctrl.RefuseSwap)
}
