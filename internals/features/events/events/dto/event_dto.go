package dto

import (
	"voluntarios_backend/internals/features/events/events/model"
)

// ================== REQUEST ==================
type EventRequest struct {
	EventName        string `json:"event_name" validate:"required,min=2,max=150"`
	EventDescription string `json:"event_description"`
	EventLocation    string `json:"event_location"`
	EventDate        string `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventStartTime   string `json:"event_start_time" validate:"required"`
	EventEndTime     string `json:"event_end_time" validate:"required"`
}

type EventStatusRequest struct {
	EventStatus string `json:"event_status" validate:"required,oneof=Pendente Confirmado Cancelado"`
}

// Escala um departamento + voluntários no evento (cria as linhas de participação)
type ScheduleRequest struct {
	DepartmentID int64   `json:"department_id" validate:"required,gt=0"`
	VolunteerIDs []int64 `json:"volunteer_ids" validate:"required,min=1,dive,gt=0"`
}

// ================== RESPONSE ==================
type EventResponse struct {
	EventID          int64  `json:"event_id"`
	EventName        string `json:"event_name"`
	EventDescription string `json:"event_description"`
	EventLocation    string `json:"event_location"`
	EventDate        string `json:"event_date"`
	EventStartTime   string `json:"event_start_time"`
	EventEndTime     string `json:"event_end_time"`
	EventStatus      string `json:"event_status"`
}

// Evento "ao vivo" devolvido ao dashboard do voluntário, já com
// departamentos, escalados e estado de presença de cada um.
type ActiveEventResponse struct {
	EventResponse
	Departments []ActiveEventDepartment `json:"departments"`
}

type ActiveEventDepartment struct {
	DepartmentID   int64                  `json:"department_id"`
	DepartmentName string                 `json:"department_name"`
	Volunteers     []ActiveEventVolunteer `json:"volunteers"`
}

type ActiveEventVolunteer struct {
	VolunteerID   int64  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
	Present       *bool  `json:"present"`
}

// ================ CONVERSION =================
func (r *EventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventName:        r.EventName,
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventDate:        r.EventDate,
		EventStartTime:   r.EventStartTime,
		EventEndTime:     r.EventEndTime,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:          m.EventID,
		EventName:        m.EventName,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventDate:        m.EventDate,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventStatus:      m.EventStatus,
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	var result []EventResponse
	for _, m := range models {
		result = append(result, *ToEventResponse(&m))
	}
	return result
}
