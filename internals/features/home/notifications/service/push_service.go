// internals/features/home/notifications/service/push_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntarios_backend/internals/configs"
	"voluntarios_backend/internals/features/home/notifications/model"
)

// PushService entrega Web Push (VAPID) para todos os endpoints do usuário.
// Endpoint que responder 404/410 saiu do navegador: apagamos na hora.
// Qualquer outro erro é só logado - push é sempre best-effort.
type PushService struct {
	DB *gorm.DB
}

func NewPushService(db *gorm.DB) *PushService {
	return &PushService{DB: db}
}

type pushPayload struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (s *PushService) SendToUser(ctx context.Context, userID uuid.UUID, title, message string, data map[string]any) {
	if configs.VapidPublicKey == "" || configs.VapidPrivateKey == "" {
		return // push desativado
	}

	var subs []model.PushSubscriptionModel
	if err := s.DB.WithContext(ctx).
		Where("push_subscription_user_id = ?", userID).
		Find(&subs).Error; err != nil {
		log.Printf("[PUSH WARNING] Falha ao buscar subscriptions de %s: %v", userID, err)
		return
	}
	if len(subs) == 0 {
		return
	}

	body, err := json.Marshal(pushPayload{Title: title, Message: message, Data: data})
	if err != nil {
		log.Printf("[PUSH WARNING] Payload não serializou: %v", err)
		return
	}

	for _, sub := range subs {
		s.sendOne(ctx, &sub, body)
	}
}

func (s *PushService) sendOne(ctx context.Context, sub *model.PushSubscriptionModel, body []byte) {
	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.PushSubscriptionEndpoint,
		Keys: webpush.Keys{
			P256dh: sub.PushSubscriptionP256dh,
			Auth:   sub.PushSubscriptionAuth,
		},
	}, &webpush.Options{
		Subscriber:      configs.VapidSubject,
		VAPIDPublicKey:  configs.VapidPublicKey,
		VAPIDPrivateKey: configs.VapidPrivateKey,
		TTL:             60,
	})
	if err != nil {
		log.Printf("[PUSH WARNING] Falha no envio (ignorada): %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		// subscription morta - limpeza como efeito colateral
		if err := s.DB.WithContext(ctx).
			Delete(&model.PushSubscriptionModel{}, "push_subscription_endpoint = ?", sub.PushSubscriptionEndpoint).
			Error; err != nil {
			log.Printf("[PUSH WARNING] Falha ao remover endpoint morto: %v", err)
		} else {
			log.Printf("[PUSH] Endpoint expirado removido (%d)", resp.StatusCode)
		}
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("[PUSH WARNING] Push respondeu %d (ignorado)", resp.StatusCode)
	}
}
