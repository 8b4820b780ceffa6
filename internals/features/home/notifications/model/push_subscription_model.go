package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel guarda os endpoints Web Push do navegador do usuário.
// Endpoint que responder 404/410 é removido na hora do envio.
type PushSubscriptionModel struct {
	PushSubscriptionID        uuid.UUID `gorm:"column:push_subscription_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"push_subscription_id"`
	PushSubscriptionUserID    uuid.UUID `gorm:"column:push_subscription_user_id;type:uuid;not null;index" json:"push_subscription_user_id"`
	PushSubscriptionEndpoint  string    `gorm:"column:push_subscription_endpoint;type:text;not null;uniqueIndex" json:"push_subscription_endpoint"`
	PushSubscriptionP256dh    string    `gorm:"column:push_subscription_p256dh;type:text;not null" json:"push_subscription_p256dh"`
	PushSubscriptionAuth      string    `gorm:"column:push_subscription_auth;type:text;not null" json:"push_subscription_auth"`
	PushSubscriptionCreatedAt time.Time `gorm:"column:push_subscription_created_at;autoCreateTime" json:"push_subscription_created_at"`
}

func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
