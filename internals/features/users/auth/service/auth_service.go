// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"voluntarios_backend/internals/configs"
	"voluntarios_backend/internals/features/users/auth/dto"
	authModel "voluntarios_backend/internals/features/users/auth/model"
)

var (
	ErrEmailJaCadastrado  = errors.New("e-mail já cadastrado")
	ErrCredenciaisInvalid = errors.New("e-mail ou senha inválidos")
)

// Register cria o usuário com papel padrão 'voluntario'.
// Promoção a líder/admin é feita pelo admin depois (PATCH /api/a/users/:id/role).
func Register(db *gorm.DB, req *dto.RegisterRequest) (*authModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailJaCadastrado
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &authModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login valida a senha e emite o par de tokens.
func Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user authModel.UserModel
	if err := db.Where("user_email = ? AND user_is_active = ?", email, true).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return nil, ErrCredenciaisInvalid
	}

	access, refresh, err := IssueTokens(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserResponse{
			UserID:           user.UserID,
			UserName:         user.UserName,
			UserEmail:        user.UserEmail,
			UserRole:         user.UserRole,
			UserDepartmentID: user.UserDepartmentID,
		},
	}, nil
}

// Logout coloca o access token na blacklist até o exp dele vencer.
func Logout(db *gorm.DB, tokenString string) error {
	expiredAt := time.Now().Add(accessTTLDefault) // fallback se o exp não parsear

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	} else {
		log.Printf("[WARNING] Logout com token que não parseia: %v", err)
	}

	entry := &authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	return db.Create(entry).Error
}
