package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	"voluntarios_backend/internals/features/events/events/dto"
	"voluntarios_backend/internals/features/events/events/model"
	"voluntarios_backend/internals/features/events/events/service"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
	helper "voluntarios_backend/internals/helpers"
	"voluntarios_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type EventController struct {
	DB           *gorm.DB
	ActiveEvents *service.ActiveEventService
}

func NewEventController(db *gorm.DB, activeEvents *service.ActiveEventService) *EventController {
	return &EventController{DB: db, ActiveEvents: activeEvents}
}

// 🟢 GET /api/u/events/active
// Fora de qualquer janela devolve active_event = null (não é erro).
func (ctrl *EventController) GetActiveEvent(c *fiber.Ctx) error {
	active, err := ctrl.ActiveEvents.ResolveActiveEvent(c.UserContext(), time.Now())
	if err != nil {
		log.Printf("[ERROR] Falha ao resolver evento ativo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar evento ativo")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"active_event": active})
}

// 🟢 POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados do evento inválidos")
	}
	if err := validateWindow(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ev := req.ToModel()
	if err := ctrl.DB.Create(ev).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar evento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar evento")
	}
	return helper.JsonCreated(c, "Evento criado", dto.ToEventResponse(ev))
}

// 🟢 GET /api/u/events (+ pagination, mais recentes primeiro)
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar eventos")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Order("event_date DESC, event_start_time DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar eventos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar eventos")
	}

	return helper.JsonList(c, "ok", dto.ToEventResponseList(events),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PATCH /api/a/events/:id/status
func (ctrl *EventController) UpdateEventStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.EventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status inválido")
	}

	res := ctrl.DB.Model(&model.EventModel{}).
		Where("event_id = ?", id).
		Update("event_status", req.EventStatus)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao atualizar status: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	}

	return helper.JsonUpdated(c, "Status atualizado", fiber.Map{
		"event_id":     id,
		"event_status": req.EventStatus,
	})
}

// 🟢 POST /api/a/events/:id/schedule
// Escala um departamento + voluntários no evento. Cria as linhas de
// participação com present = NULL (pré-condição do fluxo de presença).
func (ctrl *EventController) ScheduleVolunteers(c *fiber.Ctx) error {
	eventID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || eventID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe departamento e voluntários")
	}

	var ev model.EventModel
	if err := ctrl.DB.First(&ev, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	}

	// Só escala voluntários que realmente pertencem ao departamento
	var vols []volunteerModel.VolunteerModel
	if err := ctrl.DB.
		Where("volunteer_id IN ? AND volunteer_department_id = ?", req.VolunteerIDs, req.DepartmentID).
		Find(&vols).Error; err != nil {
		log.Printf("[ERROR] Falha ao buscar voluntários: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao escalar voluntários")
	}
	if len(vols) != len(req.VolunteerIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Há voluntários fora do departamento informado")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		link := model.EventDepartmentModel{
			EventDepartmentEventID:      eventID,
			EventDepartmentDepartmentID: req.DepartmentID,
		}
		if err := tx.Where(&link).FirstOrCreate(&link).Error; err != nil {
			return err
		}
		for _, v := range vols {
			row := attendanceModel.EventVolunteerModel{
				EventVolunteerEventID:      eventID,
				EventVolunteerVolunteerID:  v.VolunteerID,
				EventVolunteerDepartmentID: req.DepartmentID,
			}
			// idempotente: tripla já escalada não duplica
			if err := tx.Where(map[string]interface{}{
				"event_volunteer_event_id":      eventID,
				"event_volunteer_volunteer_id":  v.VolunteerID,
				"event_volunteer_department_id": req.DepartmentID,
			}).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Falha ao escalar voluntários: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao escalar voluntários")
	}

	return helper.JsonCreated(c, "Voluntários escalados", fiber.Map{
		"event_id":      eventID,
		"department_id": req.DepartmentID,
		"volunteer_ids": req.VolunteerIDs,
	})
}

// 🟢 DELETE /api/a/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&attendanceModel.EventVolunteerModel{}, "event_volunteer_event_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.EventDepartmentModel{}, "event_department_event_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.EventModel{}, "event_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		log.Printf("[ERROR] Falha ao remover evento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover evento")
	}

	return helper.JsonDeleted(c, "Evento removido", fiber.Map{"event_id": id})
}

func validateWindow(req *dto.EventRequest) error {
	start, err := dbtime.CombineLocal(req.EventDate, req.EventStartTime, time.UTC)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Horário de início inválido")
	}
	end, err := dbtime.CombineLocal(req.EventDate, req.EventEndTime, time.UTC)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Horário de término inválido")
	}
	if !end.After(start) {
		return fiber.NewError(fiber.StatusBadRequest, "Término deve ser depois do início")
	}
	return nil
}
