package volunteers

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"voluntarios_backend/internals/features/organization/volunteers/model"
)

type VolunteerSeed struct {
	VolunteerName         string `json:"volunteer_name"`
	VolunteerPhone        string `json:"volunteer_phone"`
	VolunteerDepartmentID int64  `json:"volunteer_department_id"`
}

func SeedVolunteersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de voluntários:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o arquivo JSON: %v", err)
	}

	var inputs []VolunteerSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.VolunteerModel
		if err := db.
			Where("volunteer_name = ? AND volunteer_department_id = ?", data.VolunteerName, data.VolunteerDepartmentID).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Voluntário '%s' já existe, pulando.", data.VolunteerName)
			continue
		}

		vol := model.VolunteerModel{
			VolunteerName:         data.VolunteerName,
			VolunteerPhone:        data.VolunteerPhone,
			VolunteerDepartmentID: data.VolunteerDepartmentID,
		}

		if err := db.Create(&vol).Error; err != nil {
			log.Printf("❌ Falha ao inserir voluntário '%s': %v", data.VolunteerName, err)
		} else {
			log.Printf("✅ Voluntário '%s' inserido", data.VolunteerName)
		}
	}
}
