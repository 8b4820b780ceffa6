// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "voluntarios_backend/internals/features/users/auth/controller"
	rateLimiter "voluntarios_backend/internals/middlewares"
)

// Base: /api/auth (público)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/logout", authController.Logout)
}

// Base: /api/u (autenticado)
func AuthUserRoutes(group fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)
	group.Get("/me", authController.Me)
}

// Base: /api/a (admin)
func AuthAdminRoutes(group fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)
	group.Patch("/users/:id/role", authController.UpdateUserRole)
}
