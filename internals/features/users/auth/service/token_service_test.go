package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voluntarios_backend/internals/configs"
	authModel "voluntarios_backend/internals/features/users/auth/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestIssueTokens_AccessClaims(t *testing.T) {
	configs.JWTSecret = "segredo-de-teste"
	configs.JWTRefreshSecret = "outro-segredo"

	user := &authModel.UserModel{
		UserID:           uuid.New(),
		UserName:         "Líder de Louvor",
		UserRole:         "lider",
		UserDepartmentID: int64Ptr(5),
	}

	access, refresh, err := IssueTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	token, err := jwt.Parse(access, func(tk *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)

	assert.Equal(t, user.UserID.String(), claims["user_id"])
	assert.Equal(t, "Líder de Louvor", claims["user_name"])
	assert.Equal(t, "lider", claims["role"])
	assert.Equal(t, float64(5), claims["department_id"])
	assert.NotNil(t, claims["exp"])
}

func TestIssueTokens_NoDepartmentClaimWhenUnset(t *testing.T) {
	configs.JWTSecret = "segredo-de-teste"
	configs.JWTRefreshSecret = "outro-segredo"

	user := &authModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Admin",
		UserRole: "admin",
	}

	access, _, err := IssueTokens(user)
	require.NoError(t, err)

	token, err := jwt.Parse(access, func(tk *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)

	_, has := claims["department_id"]
	assert.False(t, has)
}

func TestIssueTokens_FailsWithoutSecrets(t *testing.T) {
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	defer func() {
		configs.JWTSecret, configs.JWTRefreshSecret = oldAccess, oldRefresh
	}()
	configs.JWTSecret = ""
	configs.JWTRefreshSecret = ""

	_, _, err := IssueTokens(&authModel.UserModel{UserID: uuid.New()})
	assert.Error(t, err)
}
