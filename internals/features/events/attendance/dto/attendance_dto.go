package dto

// Payload do QR escaneado pelo líder
type ConfirmAttendanceRequest struct {
	VolunteerID  int64 `json:"volunteer_id" validate:"required,gt=0"`
	EventID      int64 `json:"event_id" validate:"required,gt=0"`
	DepartmentID int64 `json:"department_id" validate:"required,gt=0"`
}
