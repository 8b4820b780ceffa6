package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/events/swaps/dto"
	"voluntarios_backend/internals/features/events/swaps/model"
	"voluntarios_backend/internals/features/events/swaps/service"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type SwapController struct {
	DB    *gorm.DB
	Swaps *service.SwapService
}

func NewSwapController(db *gorm.DB, swaps *service.SwapService) *SwapController {
	return &SwapController{DB: db, Swaps: swaps}
}

// 🟢 POST /api/u/swaps
func (ctrl *SwapController) CreateSwap(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SwapCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe a escala e o voluntário alvo")
	}

	swap, err := ctrl.Swaps.CreateSwap(c.UserContext(), userID, &req)
	if err != nil {
		return ctrl.mapSwapError(c, err, "Falha ao criar pedido de troca")
	}
	return helper.JsonCreated(c, "Pedido de troca enviado", swap)
}

// 🟢 POST /api/u/swaps/:id/accept
func (ctrl *SwapController) AcceptSwap(c *fiber.Ctx) error {
	return ctrl.respond(c, true)
}

// 🟢 POST /api/u/swaps/:id/refuse
func (ctrl *SwapController) RefuseSwap(c *fiber.Ctx) error {
	return ctrl.respond(c, false)
}

func (ctrl *SwapController) respond(c *fiber.Ctx, accept bool) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	swapID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || swapID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	swap, err := ctrl.Swaps.RespondSwap(c.UserContext(), userID, swapID, accept)
	if err != nil {
		return ctrl.mapSwapError(c, err, "Falha ao responder pedido de troca")
	}

	msg := "Troca recusada"
	if accept {
		msg = "Troca aceita"
	}
	return helper.JsonUpdated(c, msg, swap)
}

// 🟢 GET /api/u/swaps - pedidos em que o voluntário é requerente ou alvo
func (ctrl *SwapController) GetMySwaps(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var volunteerID int64
	if err := ctrl.DB.Table("volunteers").
		Where("volunteer_user_id = ?", userID).
		Pluck("volunteer_id", &volunteerID).Error; err != nil || volunteerID == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não está vinculado a um voluntário")
	}

	var swaps []model.SwapRequestModel
	if err := ctrl.DB.
		Where("swap_request_requester_id = ? OR swap_request_target_id = ?", volunteerID, volunteerID).
		Order("swap_request_created_at DESC").
		Find(&swaps).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar trocas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar trocas")
	}

	return helper.JsonOK(c, "ok", swaps)
}

func (ctrl *SwapController) mapSwapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrSemVoluntario):
		return helper.JsonError(c, fiber.StatusForbidden, "Usuário não está vinculado a um voluntário")
	case errors.Is(err, service.ErrLinhaNaoEncontrada):
		return helper.JsonError(c, fiber.StatusNotFound, "Escala não encontrada")
	case errors.Is(err, service.ErrLinhaJaResolvida):
		return helper.JsonError(c, fiber.StatusConflict, "Presença dessa escala já foi resolvida")
	case errors.Is(err, service.ErrForaDepartamento):
		return helper.JsonError(c, fiber.StatusBadRequest, "Troca só vale dentro do mesmo departamento")
	case errors.Is(err, service.ErrAlvoJaEscalado):
		return helper.JsonError(c, fiber.StatusConflict, "Voluntário alvo já está escalado nesse evento/departamento")
	case errors.Is(err, service.ErrTrocaNaoEncontrada):
		return helper.JsonError(c, fiber.StatusNotFound, "Pedido de troca não encontrado")
	case errors.Is(err, service.ErrTrocaJaRespondida):
		return helper.JsonError(c, fiber.StatusConflict, "Pedido de troca já respondido")
	case errors.Is(err, service.ErrNaoEhAlvo):
		return helper.JsonError(c, fiber.StatusForbidden, "Só o voluntário alvo pode responder a troca")
	default:
		log.Printf("[ERROR] %s: %v", fallback, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
