package dto

// ================== REQUEST ==================
type SwapCreateRequest struct {
	EventVolunteerID int64  `json:"event_volunteer_id" validate:"required,gt=0"`
	TargetID         int64  `json:"target_id" validate:"required,gt=0"`
	Message          string `json:"message"`
}
