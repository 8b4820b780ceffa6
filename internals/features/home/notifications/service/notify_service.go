// internals/features/home/notifications/service/notify_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/home/notifications/model"
)

// NotifyService é o fan-out padrão: grava a notificação in-app e tenta o
// push. Implementa o UserNotifier dos serviços de presença/varredura.
// A gravação in-app é o efeito primário; push nunca derruba a chamada.
type NotifyService struct {
	DB   *gorm.DB
	Push *PushService // opcional
}

func NewNotifyService(db *gorm.DB, push *PushService) *NotifyService {
	return &NotifyService{DB: db, Push: push}
}

func (s *NotifyService) SendToUser(ctx context.Context, userID uuid.UUID, title, message string, tags []string, data map[string]any) error {
	notif := &model.NotificationModel{
		NotificationUserID:  userID,
		NotificationTitle:   title,
		NotificationMessage: message,
		NotificationTags:    tags,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf("[NOTIFY WARNING] data não serializou: %v", err)
		} else {
			notif.NotificationData = raw
		}
	}

	if err := s.DB.WithContext(ctx).Create(notif).Error; err != nil {
		return err
	}

	if s.Push != nil {
		s.Push.SendToUser(ctx, userID, title, message, data)
	}
	return nil
}
