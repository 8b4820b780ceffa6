// internals/features/events/attendance/service/sweep_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"voluntarios_backend/internals/constants"
	"voluntarios_backend/internals/features/events/attendance/model"
	eventModel "voluntarios_backend/internals/features/events/events/model"
	userModel "voluntarios_backend/internals/features/users/auth/model"
	"voluntarios_backend/internals/helpers/dbtime"
)

// SweepReport resume uma execução da varredura de faltas
type SweepReport struct {
	ProcessedEvents   int `json:"processed_events"`
	MarkedAbsent      int `json:"marked_absent"`
	NotificationsSent int `json:"notifications_sent"`
}

func (r SweepReport) String() string {
	return fmt.Sprintf("%d evento(s) processado(s), %d falta(s) marcada(s), %d notificação(ões) enviada(s)",
		r.ProcessedEvents, r.MarkedAbsent, r.NotificationsSent)
}

// SweepService fecha as linhas de participação que o líder nunca tocou:
// evento Confirmado já encerrado + present ainda NULL → present = false.
//
// Idempotente por construção: o filtro present IS NULL nunca re-seleciona
// linha já processada, então rodar duas vezes seguidas zera no segundo run.
type SweepService struct {
	DB       *gorm.DB
	Loc      *time.Location
	Notifier UserNotifier // opcional
}

func NewSweepService(db *gorm.DB, loc *time.Location, notifier UserNotifier) *SweepService {
	return &SweepService{DB: db, Loc: loc, Notifier: notifier}
}

func (s *SweepService) SweepAbsences(ctx context.Context, now time.Time) (SweepReport, error) {
	report := SweepReport{}

	// 1) Toda linha ainda não confirmada, de qualquer data
	var pending []model.EventVolunteerModel
	if err := s.DB.WithContext(ctx).
		Where("event_volunteer_present IS NULL").
		Find(&pending).Error; err != nil {
		return report, err
	}
	if len(pending) == 0 {
		return report, nil
	}

	eventIDs := make([]int64, 0, len(pending))
	seen := map[int64]bool{}
	for _, row := range pending {
		if !seen[row.EventVolunteerEventID] {
			seen[row.EventVolunteerEventID] = true
			eventIDs = append(eventIDs, row.EventVolunteerEventID)
		}
	}

	// 2) Só eventos Confirmados
	var events []eventModel.EventModel
	if err := s.DB.WithContext(ctx).
		Where("event_id IN ? AND event_status = ?", eventIDs, eventModel.StatusConfirmado).
		Find(&events).Error; err != nil {
		return report, err
	}

	// 3) Só eventos cujo fim (hora local) já passou
	var ended []eventModel.EventModel
	for _, ev := range events {
		end, err := dbtime.CombineLocal(ev.EventDate, ev.EventEndTime, s.Loc)
		if err != nil {
			log.Printf("[SWEEP WARNING] Evento %d com end_time inválido (%q): %v", ev.EventID, ev.EventEndTime, err)
			continue
		}
		if end.Before(now) {
			ended = append(ended, ev)
		}
	}
	if len(ended) == 0 {
		return report, nil
	}

	// 4) Marca as faltas num batch por evento, tudo numa transação.
	//    O predicado present IS NULL é re-checado no UPDATE: linha
	//    confirmada entre o SELECT e o UPDATE não vira falta.
	absentByEvent := map[int64]int{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ev := range ended {
			res := tx.Model(&model.EventVolunteerModel{}).
				Where("event_volunteer_event_id = ? AND event_volunteer_present IS NULL", ev.EventID).
				Update("event_volunteer_present", false)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				absentByEvent[ev.EventID] = int(res.RowsAffected)
			}
		}
		return nil
	})
	if err != nil {
		return report, err
	}

	for _, n := range absentByEvent {
		report.MarkedAbsent += n
	}
	report.ProcessedEvents = len(absentByEvent)

	// 5) Um resumo por (evento, destinatário): líderes dos departamentos
	//    escalados + admins. Falha de notificação não desfaz nada.
	for _, ev := range ended {
		count := absentByEvent[ev.EventID]
		if count == 0 {
			continue
		}
		report.NotificationsSent += s.notifyAbsences(ctx, &ev, count)
	}

	return report, nil
}

func (s *SweepService) notifyAbsences(ctx context.Context, ev *eventModel.EventModel, count int) int {
	if s.Notifier == nil {
		return 0
	}

	var deptIDs []int64
	if err := s.DB.WithContext(ctx).
		Model(&eventModel.EventDepartmentModel{}).
		Where("event_department_event_id = ?", ev.EventID).
		Pluck("event_department_department_id", &deptIDs).Error; err != nil {
		log.Printf("[SWEEP WARNING] Falha ao buscar departamentos do evento %d: %v", ev.EventID, err)
		deptIDs = nil
	}

	// União líderes-dos-departamentos + admins, já deduplicada na query
	var recipients []userModel.UserModel
	q := s.DB.WithContext(ctx).Where("user_role = ?", constants.RoleAdmin)
	if len(deptIDs) > 0 {
		q = q.Or("user_role = ? AND user_department_id IN ?", constants.RoleLider, deptIDs)
	}
	if err := q.Find(&recipients).Error; err != nil {
		log.Printf("[SWEEP WARNING] Falha ao buscar destinatários do evento %d: %v", ev.EventID, err)
		return 0
	}

	message := fmt.Sprintf("%d voluntário(s) marcado(s) como ausente(s) no evento %s.", count, ev.EventName)
	sent := 0
	for _, u := range recipients {
		err := s.Notifier.SendToUser(ctx, u.UserID,
			"Faltas registradas",
			message,
			[]string{"falta"},
			map[string]any{
				"event_id":      ev.EventID,
				"marked_absent": count,
			})
		if err != nil {
			log.Printf("[SWEEP WARNING] Falha ao notificar %s (ignorada): %v", u.UserID, err)
			continue
		}
		sent++
	}
	return sent
}
