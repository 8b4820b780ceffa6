package model

import (
	"time"
)

// DepartmentModel representa os ministérios/departamentos da igreja
type DepartmentModel struct {
	DepartmentID          int64     `gorm:"column:department_id;primaryKey;autoIncrement" json:"department_id"`
	DepartmentName        string    `gorm:"column:department_name;size:100;not null;unique" json:"department_name"`
	DepartmentDescription string    `gorm:"column:department_description;type:text" json:"department_description"`
	DepartmentCreatedAt   time.Time `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt   time.Time `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
