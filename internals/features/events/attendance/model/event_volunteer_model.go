package model

import (
	"time"
)

// EventVolunteerModel é a linha de participação: a tripla
// (evento, voluntário, departamento) com o tri-estado de presença.
//
//	present = NULL  → ainda não confirmado
//	present = true  → presença confirmada (definitivo)
//	present = false → falta marcada pela varredura
//
// Um voluntário pode ter mais de uma linha no mesmo evento se estiver
// escalado em departamentos diferentes - cada uma conta separado.
type EventVolunteerModel struct {
	EventVolunteerID             int64      `gorm:"column:event_volunteer_id;primaryKey;autoIncrement" json:"event_volunteer_id"`
	EventVolunteerEventID        int64      `gorm:"column:event_volunteer_event_id;not null;uniqueIndex:uq_event_volunteer;index" json:"event_volunteer_event_id"`
	EventVolunteerVolunteerID    int64      `gorm:"column:event_volunteer_volunteer_id;not null;uniqueIndex:uq_event_volunteer" json:"event_volunteer_volunteer_id"`
	EventVolunteerDepartmentID   int64      `gorm:"column:event_volunteer_department_id;not null;uniqueIndex:uq_event_volunteer" json:"event_volunteer_department_id"`
	EventVolunteerPresent        *bool      `gorm:"column:event_volunteer_present" json:"event_volunteer_present"`
	EventVolunteerConfirmedAt    *time.Time `gorm:"column:event_volunteer_confirmed_at" json:"event_volunteer_confirmed_at"`
	EventVolunteerReminderSentAt *time.Time `gorm:"column:event_volunteer_reminder_sent_at" json:"event_volunteer_reminder_sent_at"`
	EventVolunteerCreatedAt      time.Time  `gorm:"column:event_volunteer_created_at;autoCreateTime" json:"event_volunteer_created_at"`
	EventVolunteerUpdatedAt      time.Time  `gorm:"column:event_volunteer_updated_at;autoUpdateTime" json:"event_volunteer_updated_at"`
}

func (EventVolunteerModel) TableName() string {
	return "event_volunteers"
}
