package dto

import (
	"voluntarios_backend/internals/features/organization/departments/model"
)

// ================== REQUEST ==================
type DepartmentRequest struct {
	DepartmentName        string `json:"department_name" validate:"required,min=2,max=100"`
	DepartmentDescription string `json:"department_description"`
}

// ================== RESPONSE ==================
type DepartmentResponse struct {
	DepartmentID          int64  `json:"department_id"`
	DepartmentName        string `json:"department_name"`
	DepartmentDescription string `json:"department_description"`
	DepartmentCreatedAt   string `json:"department_created_at"`
}

// ================ CONVERSION =================
func (r *DepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{
		DepartmentName:        r.DepartmentName,
		DepartmentDescription: r.DepartmentDescription,
	}
}

func ToDepartmentResponse(m *model.DepartmentModel) *DepartmentResponse {
	return &DepartmentResponse{
		DepartmentID:          m.DepartmentID,
		DepartmentName:        m.DepartmentName,
		DepartmentDescription: m.DepartmentDescription,
		DepartmentCreatedAt:   m.DepartmentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDepartmentResponseList(models []model.DepartmentModel) []DepartmentResponse {
	var result []DepartmentResponse
	for _, m := range models {
		result = append(result, *ToDepartmentResponse(&m))
	}
	return result
}
