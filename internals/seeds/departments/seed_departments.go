package departments

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"voluntarios_backend/internals/features/organization/departments/model"
)

type DepartmentSeed struct {
	DepartmentName        string `json:"department_name"`
	DepartmentDescription string `json:"department_description"`
}

func SeedDepartmentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de departamentos:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o arquivo JSON: %v", err)
	}

	var inputs []DepartmentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.DepartmentModel
		if err := db.Where("department_name = ?", data.DepartmentName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Departamento '%s' já existe, pulando.", data.DepartmentName)
			continue
		}

		dept := model.DepartmentModel{
			DepartmentName:        data.DepartmentName,
			DepartmentDescription: data.DepartmentDescription,
		}

		if err := db.Create(&dept).Error; err != nil {
			log.Printf("❌ Falha ao inserir departamento '%s': %v", data.DepartmentName, err)
		} else {
			log.Printf("✅ Departamento '%s' inserido", data.DepartmentName)
		}
	}
}
