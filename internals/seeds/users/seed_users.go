package users

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"voluntarios_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	UserName         string `json:"user_name"`
	UserEmail        string `json:"user_email"`
	UserPassword     string `json:"user_password"`
	UserRole         string `json:"user_role"`
	UserDepartmentID *int64 `json:"user_department_id"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de usuários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o arquivo JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.UserEmail).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Usuário com email '%s' já existe, pulando.", data.UserEmail)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Falha ao gerar hash para '%s': %v", data.UserEmail, err)
			continue
		}

		newUser := model.UserModel{
			UserID:           uuid.New(),
			UserName:         data.UserName,
			UserEmail:        data.UserEmail,
			UserPassword:     string(hashed),
			UserRole:         data.UserRole,
			UserDepartmentID: data.UserDepartmentID,
			UserIsActive:     true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Falha ao inserir usuário '%s': %v", data.UserEmail, err)
		} else {
			log.Printf("✅ Usuário '%s' inserido", data.UserEmail)
		}
	}
}
