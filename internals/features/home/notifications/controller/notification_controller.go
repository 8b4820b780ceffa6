package controller

import (
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/home/notifications/dto"
	"voluntarios_backend/internals/features/home/notifications/model"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications (+ pagination, mais recentes primeiro)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar notificações")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar notificações: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar notificações")
	}

	out := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		item := dto.NotificationResponse{
			NotificationID:      n.NotificationID,
			NotificationTitle:   n.NotificationTitle,
			NotificationMessage: n.NotificationMessage,
			NotificationTags:    n.NotificationTags,
			NotificationRead:    n.NotificationRead,
			NotificationCreated: n.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
		}
		if len(n.NotificationData) > 0 {
			_ = json.Unmarshal(n.NotificationData, &item.NotificationData)
		}
		out = append(out, item)
	}

	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de notificação inválido")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao marcar notificação: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao marcar notificação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
	}

	return helper.JsonUpdated(c, "Notificação lida", fiber.Map{"notification_id": notifID})
}

// 🟢 POST /api/u/push-subscriptions
func (ctrl *NotificationController) Subscribe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PushSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subscription incompleta")
	}

	sub := req.ToModel(userID)
	// mesmo endpoint re-registrado troca de dono/chaves em vez de duplicar
	err = ctrl.DB.Where("push_subscription_endpoint = ?", req.Endpoint).
		Assign(map[string]interface{}{
			"push_subscription_user_id": userID,
			"push_subscription_p256dh":  req.Keys.P256dh,
			"push_subscription_auth":    req.Keys.Auth,
		}).
		FirstOrCreate(sub).Error
	if err != nil {
		log.Printf("[ERROR] Falha ao registrar subscription: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar subscription")
	}

	return helper.JsonCreated(c, "Subscription registrada", fiber.Map{
		"push_subscription_id": sub.PushSubscriptionID,
	})
}

// 🟢 DELETE /api/u/push-subscriptions
func (ctrl *NotificationController) Unsubscribe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PushUnsubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe o endpoint")
	}

	res := ctrl.DB.Delete(&model.PushSubscriptionModel{},
		"push_subscription_endpoint = ? AND push_subscription_user_id = ?", req.Endpoint, userID)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao remover subscription: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover subscription")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription não encontrada")
	}

	return helper.JsonDeleted(c, "Subscription removida", nil)
}
