package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"voluntarios_backend/internals/features/events/attendance/dto"
	"voluntarios_backend/internals/features/events/attendance/service"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	Attendance *service.AttendanceService
	Sweep      *service.SweepService
}

func NewAttendanceController(attendance *service.AttendanceService, sweep *service.SweepService) *AttendanceController {
	return &AttendanceController{Attendance: attendance, Sweep: sweep}
}

// 🟢 POST /api/u/attendance/confirm  (líder escaneia o QR do voluntário)
func (ctrl *AttendanceController) ConfirmAttendance(c *fiber.Ctx) error {
	callerDeptID, err := helper.GetDepartmentIDFromToken(c)
	if err != nil {
		return err // 401 - token sem departamento
	}

	var req dto.ConfirmAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "QR code inválido")
	}

	row, err := ctrl.Attendance.ConfirmAttendance(c.UserContext(), callerDeptID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOutroDepartamento):
			return helper.JsonError(c, fiber.StatusForbidden, "Você só pode confirmar presença do seu departamento")
		case errors.Is(err, service.ErrNaoEscalado):
			return helper.JsonError(c, fiber.StatusNotFound, "Voluntário não está escalado neste evento/departamento")
		case errors.Is(err, service.ErrPresencaJaConfirmada):
			// 409 de propósito: o app mostra "já confirmado" em vez de erro genérico
			return helper.JsonError(c, fiber.StatusConflict, "Este voluntário já teve a presença confirmada.")
		default:
			log.Printf("[ERROR] Falha ao confirmar presença: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao confirmar presença")
		}
	}

	return helper.JsonOK(c, "Presença confirmada com sucesso", row)
}

// 🟢 POST /api/cron/attendance/process  (disparado pelo cron externo)
// Zero eventos encerrados não é erro: devolve os contadores zerados.
func (ctrl *AttendanceController) ProcessAbsences(c *fiber.Ctx) error {
	report, err := ctrl.Sweep.SweepAbsences(c.UserContext(), time.Now())
	if err != nil {
		log.Printf("[ERROR] Varredura de faltas abortada: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar faltas")
	}

	log.Printf("[SWEEP] %s", report.String())
	return helper.JsonOK(c, report.String(), report)
}
