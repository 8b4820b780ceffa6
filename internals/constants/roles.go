package constants

import "fmt"

// Papéis de usuário
const (
	RoleAdmin      = "admin"
	RoleLider      = "lider"
	RoleVoluntario = "voluntario"
)

// Template de mensagem de erro por papel
const (
	ErrOnlyAdminsCanAccess  = "❌ Apenas administradores podem acessar %s."
	ErrOnlyLeadersCanAccess = "❌ Apenas líderes ou administradores podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}
