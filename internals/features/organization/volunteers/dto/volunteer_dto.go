package dto

import (
	"github.com/google/uuid"

	"voluntarios_backend/internals/features/organization/volunteers/model"
)

// ================== REQUEST ==================
type VolunteerRequest struct {
	VolunteerName         string     `json:"volunteer_name" validate:"required,min=2,max=100"`
	VolunteerPhone        string     `json:"volunteer_phone" validate:"omitempty,e164"`
	VolunteerDepartmentID int64      `json:"volunteer_department_id" validate:"required,gt=0"`
	VolunteerUserID       *uuid.UUID `json:"volunteer_user_id"`
}

// ================== RESPONSE ==================
type VolunteerResponse struct {
	VolunteerID           int64      `json:"volunteer_id"`
	VolunteerName         string     `json:"volunteer_name"`
	VolunteerPhone        string     `json:"volunteer_phone"`
	VolunteerDepartmentID int64      `json:"volunteer_department_id"`
	VolunteerUserID       *uuid.UUID `json:"volunteer_user_id"`
}

// Payload embutido no QR code que o líder escaneia no dia do evento
type QRPayload struct {
	VolunteerID  int64 `json:"volunteer_id"`
	EventID      int64 `json:"event_id"`
	DepartmentID int64 `json:"department_id"`
}

// ================ CONVERSION =================
func (r *VolunteerRequest) ToModel() *model.VolunteerModel {
	return &model.VolunteerModel{
		VolunteerName:         r.VolunteerName,
		VolunteerPhone:        r.VolunteerPhone,
		VolunteerDepartmentID: r.VolunteerDepartmentID,
		VolunteerUserID:       r.VolunteerUserID,
	}
}

func ToVolunteerResponse(m *model.VolunteerModel) *VolunteerResponse {
	return &VolunteerResponse{
		VolunteerID:           m.VolunteerID,
		VolunteerName:         m.VolunteerName,
		VolunteerPhone:        m.VolunteerPhone,
		VolunteerDepartmentID: m.VolunteerDepartmentID,
		VolunteerUserID:       m.VolunteerUserID,
	}
}

func ToVolunteerResponseList(models []model.VolunteerModel) []VolunteerResponse {
	var result []VolunteerResponse
	for _, m := range models {
		result = append(result, *ToVolunteerResponse(&m))
	}
	return result
}
