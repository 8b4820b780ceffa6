// internals/features/users/auth/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"voluntarios_backend/internals/configs"
	authModel "voluntarios_backend/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

// buildAccessClaims monta as claims consumidas pelo AuthMiddleware.
// department_id só entra quando o usuário tem departamento vinculado.
func buildAccessClaims(user *authModel.UserModel, ttl time.Duration) jwt.MapClaims {
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(ttl).Unix(),
		"iat":       time.Now().Unix(),
	}
	if user.UserDepartmentID != nil && *user.UserDepartmentID > 0 {
		claims["department_id"] = *user.UserDepartmentID
	}
	return claims
}

func buildRefreshClaims(user *authModel.UserModel, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": user.UserID.String(),
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
}

// IssueTokens assina o par access/refresh para o usuário.
func IssueTokens(user *authModel.UserModel) (access string, refresh string, err error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", "", fmt.Errorf("JWT secrets não configurados")
	}

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, accessTTLDefault)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user, refreshTTLDefault)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
