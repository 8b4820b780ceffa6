package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntarios_backend/internals/constants"
	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	eventService "voluntarios_backend/internals/features/events/events/service"
	"voluntarios_backend/internals/features/organization/volunteers/dto"
	"voluntarios_backend/internals/features/organization/volunteers/model"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type VolunteerController struct {
	DB           *gorm.DB
	ActiveEvents *eventService.ActiveEventService
}

func NewVolunteerController(db *gorm.DB, activeEvents *eventService.ActiveEventService) *VolunteerController {
	return &VolunteerController{DB: db, ActiveEvents: activeEvents}
}

// 🟢 POST /api/a/volunteers
func (ctrl *VolunteerController) CreateVolunteer(c *fiber.Ctx) error {
	var req dto.VolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados do voluntário inválidos")
	}

	vol := req.ToModel()
	if err := ctrl.DB.Create(vol).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar voluntário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar voluntário")
	}

	return helper.JsonCreated(c, "Voluntário criado", dto.ToVolunteerResponse(vol))
}

// 🟢 GET /api/u/volunteers (+ ?department_id= + pagination)
func (ctrl *VolunteerController) GetAllVolunteers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.VolunteerModel{})
	if deptStr := c.Query("department_id"); deptStr != "" {
		deptID, err := strconv.ParseInt(deptStr, 10, 64)
		if err != nil || deptID <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "department_id inválido")
		}
		query = query.Where("volunteer_department_id = ?", deptID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar voluntários")
	}

	var vols []model.VolunteerModel
	if err := query.
		Order("volunteer_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&vols).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar voluntários: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar voluntários")
	}

	return helper.JsonList(c, "ok", dto.ToVolunteerResponseList(vols),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PUT /api/a/volunteers/:id
func (ctrl *VolunteerController) UpdateVolunteer(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.VolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados do voluntário inválidos")
	}

	res := ctrl.DB.Model(&model.VolunteerModel{}).
		Where("volunteer_id = ?", id).
		Updates(map[string]interface{}{
			"volunteer_name":          req.VolunteerName,
			"volunteer_phone":         req.VolunteerPhone,
			"volunteer_department_id": req.VolunteerDepartmentID,
			"volunteer_user_id":       req.VolunteerUserID,
		})
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao atualizar voluntário: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar voluntário")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não encontrado")
	}

	return helper.JsonUpdated(c, "Voluntário atualizado", fiber.Map{"volunteer_id": id})
}

// 🟢 DELETE /api/a/volunteers/:id
func (ctrl *VolunteerController) DeleteVolunteer(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Delete(&model.VolunteerModel{}, "volunteer_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao remover voluntário: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover voluntário")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não encontrado")
	}

	return helper.JsonDeleted(c, "Voluntário removido", fiber.Map{"volunteer_id": id})
}

// 🟢 GET /api/u/volunteers/:id/qr
// Payload que o app do voluntário transforma em QR code no evento ao vivo.
// Voluntário comum só gera o próprio QR; líder/admin geram de qualquer um.
func (ctrl *VolunteerController) GetQRPayload(c *fiber.Ctx) error {
	volunteerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || volunteerID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if role != constants.RoleLider && role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		var vol model.VolunteerModel
		if err := ctrl.DB.First(&vol, "volunteer_id = ?", volunteerID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não encontrado")
		}
		if vol.VolunteerUserID == nil || *vol.VolunteerUserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Você só pode gerar o QR da sua própria escala")
		}
	}

	active, err := ctrl.ActiveEvents.ResolveActiveEvent(c.UserContext(), time.Now())
	if err != nil {
		log.Printf("[ERROR] Falha ao resolver evento ativo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar QR code")
	}
	if active == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhum evento ativo no momento")
	}

	var rows []attendanceModel.EventVolunteerModel
	if err := ctrl.DB.
		Where("event_volunteer_event_id = ? AND event_volunteer_volunteer_id = ?", active.EventID, volunteerID).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Falha ao buscar escala: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar QR code")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não está escalado no evento ativo")
	}

	payloads := make([]dto.QRPayload, 0, len(rows))
	for _, r := range rows {
		payloads = append(payloads, dto.QRPayload{
			VolunteerID:  r.EventVolunteerVolunteerID,
			EventID:      r.EventVolunteerEventID,
			DepartmentID: r.EventVolunteerDepartmentID,
		})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"event_id": active.EventID,
		"payloads": payloads,
	})
}
