package model

import (
	"time"
)

// Status do pedido de troca de escala
const (
	SwapPendente = "pendente"
	SwapAceita   = "aceita"
	SwapRecusada = "recusada"
)

// SwapRequestModel registra o pedido de troca: o requerente quer passar a
// linha de participação dele para o voluntário alvo (mesmo departamento).
type SwapRequestModel struct {
	SwapRequestID               int64      `gorm:"column:swap_request_id;primaryKey;autoIncrement" json:"swap_request_id"`
	SwapRequestEventVolunteerID int64      `gorm:"column:swap_request_event_volunteer_id;not null;index" json:"swap_request_event_volunteer_id"`
	SwapRequestRequesterID      int64      `gorm:"column:swap_request_requester_id;not null;index" json:"swap_request_requester_id"` // volunteer_id
	SwapRequestTargetID         int64      `gorm:"column:swap_request_target_id;not null;index" json:"swap_request_target_id"`       // volunteer_id
	SwapRequestStatus           string     `gorm:"column:swap_request_status;type:varchar(10);not null;default:'pendente'" json:"swap_request_status"`
	SwapRequestMessage          string     `gorm:"column:swap_request_message;type:text" json:"swap_request_message"`
	SwapRequestRespondedAt      *time.Time `gorm:"column:swap_request_responded_at" json:"swap_request_responded_at"`
	SwapRequestCreatedAt        time.Time  `gorm:"column:swap_request_created_at;autoCreateTime" json:"swap_request_created_at"`
	SwapRequestUpdatedAt        time.Time  `gorm:"column:swap_request_updated_at;autoUpdateTime" json:"swap_request_updated_at"`
}

func (SwapRequestModel) TableName() string {
	return "swap_requests"
}
