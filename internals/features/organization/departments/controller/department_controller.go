package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/organization/departments/dto"
	"voluntarios_backend/internals/features/organization/departments/model"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

// 🟢 POST /api/a/departments
func (ctrl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome do departamento é obrigatório")
	}

	dep := req.ToModel()
	if err := ctrl.DB.Create(dep).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar departamento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar departamento")
	}

	return helper.JsonCreated(c, "Departamento criado", dto.ToDepartmentResponse(dep))
}

// 🟢 GET /api/u/departments
func (ctrl *DepartmentController) GetAllDepartments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.DepartmentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar departamentos")
	}

	var deps []model.DepartmentModel
	if err := ctrl.DB.
		Order("department_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&deps).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar departamentos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar departamentos")
	}

	return helper.JsonList(c, "ok", dto.ToDepartmentResponseList(deps),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PUT /api/a/departments/:id
func (ctrl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome do departamento é obrigatório")
	}

	res := ctrl.DB.Model(&model.DepartmentModel{}).
		Where("department_id = ?", id).
		Updates(map[string]interface{}{
			"department_name":        req.DepartmentName,
			"department_description": req.DepartmentDescription,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao atualizar departamento: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar departamento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	return helper.JsonUpdated(c, "Departamento atualizado", fiber.Map{"department_id": id})
}

// 🟢 DELETE /api/a/departments/:id
func (ctrl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao remover departamento: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover departamento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
	}

	return helper.JsonDeleted(c, "Departamento removido", fiber.Map{"department_id": id})
}
