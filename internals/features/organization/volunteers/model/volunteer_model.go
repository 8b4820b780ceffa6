package model

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerModel representa o voluntário escalável.
// volunteer_user_id liga ao usuário dono (recebe notificações in-app/push);
// pode ser nulo enquanto o voluntário não criou conta.
type VolunteerModel struct {
	VolunteerID           int64      `gorm:"column:volunteer_id;primaryKey;autoIncrement" json:"volunteer_id"`
	VolunteerName         string     `gorm:"column:volunteer_name;size:100;not null" json:"volunteer_name"`
	VolunteerPhone        string     `gorm:"column:volunteer_phone;size:20" json:"volunteer_phone"` // E.164, usado no WhatsApp
	VolunteerDepartmentID int64      `gorm:"column:volunteer_department_id;not null;index" json:"volunteer_department_id"`
	VolunteerUserID       *uuid.UUID `gorm:"column:volunteer_user_id;type:uuid;index" json:"volunteer_user_id"`
	VolunteerCreatedAt    time.Time  `gorm:"column:volunteer_created_at;autoCreateTime" json:"volunteer_created_at"`
	VolunteerUpdatedAt    time.Time  `gorm:"column:volunteer_updated_at;autoUpdateTime" json:"volunteer_updated_at"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}
