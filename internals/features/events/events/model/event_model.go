package model

import (
	"time"
)

// Status do evento - só "Confirmado" participa da janela ativa e da varredura
const (
	StatusPendente   = "Pendente"
	StatusConfirmado = "Confirmado"
	StatusCancelado  = "Cancelado"
)

// EventModel representa a tabela events.
// event_date/start/end guardam hora de parede LOCAL (fuso da igreja),
// nunca UTC - a conversão acontece só na hora de comparar janelas.
type EventModel struct {
	EventID          int64     `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	EventName        string    `gorm:"column:event_name;size:150;not null" json:"event_name"`
	EventDescription string    `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;size:150" json:"event_location"`
	EventDate        string    `gorm:"column:event_date;type:date;not null;index" json:"event_date"`            // "YYYY-MM-DD"
	EventStartTime   string    `gorm:"column:event_start_time;type:varchar(8);not null" json:"event_start_time"` // "HH:MM"
	EventEndTime     string    `gorm:"column:event_end_time;type:varchar(8);not null" json:"event_end_time"`     // "HH:MM"
	EventStatus      string    `gorm:"column:event_status;type:varchar(20);not null;default:'Pendente';index" json:"event_status"`
	EventCreatedAt   time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt   time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

// EventDepartmentModel liga evento ↔ departamento escalado
type EventDepartmentModel struct {
	EventDepartmentID           int64     `gorm:"column:event_department_id;primaryKey;autoIncrement" json:"event_department_id"`
	EventDepartmentEventID      int64     `gorm:"column:event_department_event_id;not null;uniqueIndex:uq_event_department" json:"event_department_event_id"`
	EventDepartmentDepartmentID int64     `gorm:"column:event_department_department_id;not null;uniqueIndex:uq_event_department" json:"event_department_department_id"`
	EventDepartmentCreatedAt    time.Time `gorm:"column:event_department_created_at;autoCreateTime" json:"event_department_created_at"`
}

func (EventDepartmentModel) TableName() string {
	return "event_departments"
}
