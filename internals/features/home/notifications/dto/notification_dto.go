package dto

import (
	"github.com/google/uuid"

	"voluntarios_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================
type PushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" validate:"required"`
		Auth   string `json:"auth" validate:"required"`
	} `json:"keys"`
}

type PushUnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID      uuid.UUID      `json:"notification_id"`
	NotificationTitle   string         `json:"notification_title"`
	NotificationMessage string         `json:"notification_message"`
	NotificationTags    []string       `json:"notification_tags"`
	NotificationData    map[string]any `json:"notification_data"`
	NotificationRead    bool           `json:"notification_read"`
	NotificationCreated string         `json:"notification_created_at"`
}

// ================ CONVERSION =================
func (r *PushSubscriptionRequest) ToModel(userID uuid.UUID) *model.PushSubscriptionModel {
	return &model.PushSubscriptionModel{
		PushSubscriptionUserID:   userID,
		PushSubscriptionEndpoint: r.Endpoint,
		PushSubscriptionP256dh:   r.Keys.P256dh,
		PushSubscriptionAuth:     r.Keys.Auth,
	}
}
