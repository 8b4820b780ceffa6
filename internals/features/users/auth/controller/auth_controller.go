package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntarios_backend/internals/constants"
	"voluntarios_backend/internals/features/users/auth/dto"
	authModel "voluntarios_backend/internals/features/users/auth/model"
	"voluntarios_backend/internals/features/users/auth/service"
	helper "voluntarios_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dados de cadastro inválidos")
	}

	user, err := service.Register(ac.DB, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailJaCadastrado) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		log.Printf("[ERROR] Falha no cadastro: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cadastrar usuário")
	}

	return helper.JsonCreated(c, "Cadastro realizado com sucesso", dto.UserResponse{
		UserID:           user.UserID,
		UserName:         user.UserName,
		UserEmail:        user.UserEmail,
		UserRole:         user.UserRole,
		UserDepartmentID: user.UserDepartmentID,
	})
}

// 🟢 POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Informe e-mail e senha")
	}

	resp, err := service.Login(ac.DB, &req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalid) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha inválidos")
		}
		log.Printf("[ERROR] Falha no login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao realizar login")
	}

	return helper.JsonOK(c, "Login realizado com sucesso", resp)
}

// 🟢 POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token ausente")
	}

	if err := service.Logout(ac.DB, fields[1]); err != nil {
		log.Printf("[ERROR] Falha no logout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar sessão")
	}
	return helper.JsonOK(c, "Sessão encerrada", nil)
}

// 🟢 GET /api/u/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user authModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.JsonOK(c, "ok", dto.UserResponse{
		UserID:           user.UserID,
		UserName:         user.UserName,
		UserEmail:        user.UserEmail,
		UserRole:         user.UserRole,
		UserDepartmentID: user.UserDepartmentID,
	})
}

// 🟢 PATCH /api/a/users/:id/role  (body: { "role": "lider", "department_id": 2 })
func (ac *AuthController) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de usuário inválido")
	}

	type RolePayload struct {
		Role         string `json:"role"`
		DepartmentID *int64 `json:"department_id"`
	}
	var payload RolePayload
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	switch payload.Role {
	case constants.RoleAdmin, constants.RoleLider, constants.RoleVoluntario:
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Papel inválido")
	}
	if payload.Role == constants.RoleLider && (payload.DepartmentID == nil || *payload.DepartmentID <= 0) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Líder precisa de um departamento")
	}

	updates := map[string]interface{}{
		"user_role":          payload.Role,
		"user_department_id": payload.DepartmentID,
	}
	res := ac.DB.Model(&authModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] Falha ao atualizar papel: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar papel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.JsonUpdated(c, "Papel atualizado", fiber.Map{
		"user_id":       userID,
		"role":          payload.Role,
		"department_id": payload.DepartmentID,
	})
}
