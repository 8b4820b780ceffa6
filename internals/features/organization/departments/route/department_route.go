// file: internals/features/organization/departments/route/department_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "voluntarios_backend/internals/features/organization/departments/controller"
)

// Base: /api/u
func DepartmentUserRoutes(group fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)
	group.Get("/departments", ctrl.GetAllDepartments)
}

// Base: /api/a
func DepartmentAdminRoutes(group fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)
	group.Post("/departments", ctrl.CreateDepartment)
	group.Put("/departments/:id", ctrl.UpdateDepartment)
	group.Delete("/departments/:id", ctrl.DeleteDepartment)
}
