// internals/features/events/attendance/service/attendance_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/events/attendance/dto"
	"voluntarios_backend/internals/features/events/attendance/model"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
)

var (
	// Líder só confirma presença dentro do próprio departamento
	ErrOutroDepartamento = errors.New("líder só pode confirmar presença do próprio departamento")
	// A tripla (evento, voluntário, departamento) não existe - QR errado
	ErrNaoEscalado = errors.New("voluntário não está escalado neste evento/departamento")
	// Releitura de QR já confirmado - o app mostra "já confirmado", não sucesso
	ErrPresencaJaConfirmada = errors.New("Este voluntário já teve a presença confirmada.")
)

// UserNotifier entrega a notificação best-effort depois que a transição
// de presença já foi gravada. Falha aqui nunca desfaz a confirmação.
type UserNotifier interface {
	SendToUser(ctx context.Context, userID uuid.UUID, title, message string, tags []string, data map[string]any) error
}

type AttendanceService struct {
	DB       *gorm.DB
	Notifier UserNotifier // opcional
}

func NewAttendanceService(db *gorm.DB, notifier UserNotifier) *AttendanceService {
	return &AttendanceService{DB: db, Notifier: notifier}
}

// ConfirmAttendance valida o escopo do líder e faz a transição one-way
// present → true para a tripla exata. A transição é um único UPDATE
// condicional: com dois líderes escaneando o mesmo QR ao mesmo tempo, só
// um observa sucesso; o outro recebe ErrPresencaJaConfirmada.
//
// Linha já marcada como falta (present = false) ainda pode virar presença:
// chegada atrasada conta.
func (s *AttendanceService) ConfirmAttendance(ctx context.Context, callerDepartmentID int64, req *dto.ConfirmAttendanceRequest) (*model.EventVolunteerModel, error) {
	if callerDepartmentID != req.DepartmentID {
		return nil, ErrOutroDepartamento
	}

	var row model.EventVolunteerModel
	err := s.DB.WithContext(ctx).
		Where("event_volunteer_event_id = ? AND event_volunteer_volunteer_id = ? AND event_volunteer_department_id = ?",
			req.EventID, req.VolunteerID, req.DepartmentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEscalado
		}
		return nil, err
	}

	if row.EventVolunteerPresent != nil && *row.EventVolunteerPresent {
		return nil, ErrPresencaJaConfirmada
	}

	now := time.Now()
	res := s.DB.WithContext(ctx).
		Model(&model.EventVolunteerModel{}).
		Where("event_volunteer_event_id = ? AND event_volunteer_volunteer_id = ? AND event_volunteer_department_id = ?",
			req.EventID, req.VolunteerID, req.DepartmentID).
		Where("event_volunteer_present IS NULL OR event_volunteer_present = ?", false).
		Updates(map[string]interface{}{
			"event_volunteer_present":      true,
			"event_volunteer_confirmed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// alguém confirmou entre o SELECT e o UPDATE
		return nil, ErrPresencaJaConfirmada
	}

	present := true
	row.EventVolunteerPresent = &present
	row.EventVolunteerConfirmedAt = &now

	// Fan-out best-effort: só depois da transição commitada
	s.notifyConfirmation(ctx, &row)

	return &row, nil
}

func (s *AttendanceService) notifyConfirmation(ctx context.Context, row *model.EventVolunteerModel) {
	if s.Notifier == nil {
		return
	}

	var vol volunteerModel.VolunteerModel
	if err := s.DB.WithContext(ctx).
		First(&vol, "volunteer_id = ?", row.EventVolunteerVolunteerID).Error; err != nil {
		log.Printf("[WARNING] Presença confirmada mas voluntário %d não carregou p/ notificar: %v",
			row.EventVolunteerVolunteerID, err)
		return
	}
	if vol.VolunteerUserID == nil {
		return // voluntário sem conta, nada a notificar
	}

	err := s.Notifier.SendToUser(ctx, *vol.VolunteerUserID,
		"Presença confirmada",
		"Sua presença foi confirmada. Bom serviço! 🙌",
		[]string{"presenca"},
		map[string]any{
			"event_id":      row.EventVolunteerEventID,
			"volunteer_id":  row.EventVolunteerVolunteerID,
			"department_id": row.EventVolunteerDepartmentID,
		})
	if err != nil {
		log.Printf("[WARNING] Falha na notificação de presença (ignorada): %v", err)
	}
}
