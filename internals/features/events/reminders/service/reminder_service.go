// internals/features/events/reminders/service/reminder_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	attendanceModel "voluntarios_backend/internals/features/events/attendance/model"
	eventModel "voluntarios_backend/internals/features/events/events/model"
	notifService "voluntarios_backend/internals/features/home/notifications/service"
	volunteerModel "voluntarios_backend/internals/features/organization/volunteers/model"
	"voluntarios_backend/internals/helpers/dbtime"
)

// ReminderReport resume uma execução dos lembretes
type ReminderReport struct {
	ProcessedEvents int `json:"processed_events"`
	RemindersSent   int `json:"reminders_sent"`
}

// MessageSender é o canal de saída do lembrete (WhatsApp em produção)
type MessageSender interface {
	Enabled() bool
	SendMessage(phone, body string) error
}

var _ MessageSender = (*notifService.WhatsAppService)(nil)

// ReminderService manda o lembrete de escala por WhatsApp antes do evento
// começar. O carimbo reminder_sent_at na linha de participação garante no
// máximo um lembrete por escalado, mesmo com cron e scheduler competindo.
type ReminderService struct {
	DB       *gorm.DB
	Loc      *time.Location
	WhatsApp MessageSender
	Lead     time.Duration // janela de antecedência (default 2h)
}

func NewReminderService(db *gorm.DB, loc *time.Location, wa MessageSender, lead time.Duration) *ReminderService {
	if lead <= 0 {
		lead = 2 * time.Hour
	}
	return &ReminderService{DB: db, Loc: loc, WhatsApp: wa, Lead: lead}
}

func (s *ReminderService) ProcessReminders(ctx context.Context, now time.Time) (ReminderReport, error) {
	report := ReminderReport{}
	if s.WhatsApp == nil || !s.WhatsApp.Enabled() {
		return report, nil
	}

	today := dbtime.DateStr(now, s.Loc)

	var events []eventModel.EventModel
	if err := s.DB.WithContext(ctx).
		Where("event_date = ? AND event_status = ?", today, eventModel.StatusConfirmado).
		Find(&events).Error; err != nil {
		return report, err
	}

	for _, ev := range events {
		start, err := dbtime.CombineLocal(ev.EventDate, ev.EventStartTime, s.Loc)
		if err != nil {
			log.Printf("[REMINDER WARNING] Evento %d com start_time inválido: %v", ev.EventID, err)
			continue
		}
		// dentro da janela: ainda não começou e começa em <= Lead
		if !start.After(now) || start.After(now.Add(s.Lead)) {
			continue
		}

		sent, err := s.remindEvent(ctx, &ev, start)
		if err != nil {
			return report, err
		}
		if sent > 0 {
			report.ProcessedEvents++
			report.RemindersSent += sent
		}
	}
	return report, nil
}

func (s *ReminderService) remindEvent(ctx context.Context, ev *eventModel.EventModel, start time.Time) (int, error) {
	var rows []attendanceModel.EventVolunteerModel
	if err := s.DB.WithContext(ctx).
		Where("event_volunteer_event_id = ? AND event_volunteer_reminder_sent_at IS NULL", ev.EventID).
		Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	volIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		volIDs = append(volIDs, r.EventVolunteerVolunteerID)
	}
	var vols []volunteerModel.VolunteerModel
	if err := s.DB.WithContext(ctx).
		Where("volunteer_id IN ?", volIDs).
		Find(&vols).Error; err != nil {
		return 0, err
	}
	volByID := map[int64]volunteerModel.VolunteerModel{}
	for _, v := range vols {
		volByID[v.VolunteerID] = v
	}

	body := fmt.Sprintf("Olá! Lembrete da sua escala de hoje: %s às %s (%s). Contamos com você! 🙏",
		ev.EventName, start.Format("15:04"), ev.EventLocation)

	sent := 0
	now := time.Now()
	for _, r := range rows {
		vol, ok := volByID[r.EventVolunteerVolunteerID]
		if !ok || vol.VolunteerPhone == "" {
			continue
		}
		if err := s.WhatsApp.SendMessage(vol.VolunteerPhone, body); err != nil {
			log.Printf("[REMINDER WARNING] Falha no WhatsApp p/ voluntário %d (ignorada): %v", vol.VolunteerID, err)
			continue
		}
		// carimba só quem recebeu - linha sem carimbo tenta de novo no próximo run
		if err := s.DB.WithContext(ctx).
			Model(&attendanceModel.EventVolunteerModel{}).
			Where("event_volunteer_id = ? AND event_volunteer_reminder_sent_at IS NULL", r.EventVolunteerID).
			Update("event_volunteer_reminder_sent_at", now).Error; err != nil {
			log.Printf("[REMINDER WARNING] Falha ao carimbar lembrete: %v", err)
			continue
		}
		sent++
	}
	return sent, nil
}
