package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel representa a tabela users (identidade emitida pelo provedor de auth)
type UserModel struct {
	UserID           uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName         string         `gorm:"column:user_name;size:100;not null" json:"user_name" validate:"required,min=3,max=100"`
	UserEmail        string         `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword     string         `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserRole         string         `gorm:"column:user_role;type:varchar(20);not null;default:'voluntario'" json:"user_role"`
	UserDepartmentID *int64         `gorm:"column:user_department_id" json:"user_department_id"` // líder pertence a um departamento
	UserIsActive     bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt    time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt    gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
