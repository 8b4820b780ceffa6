package seeds

import (
	"gorm.io/gorm"

	departments "voluntarios_backend/internals/seeds/departments"
	users "voluntarios_backend/internals/seeds/users"
	volunteers "voluntarios_backend/internals/seeds/volunteers"
)

func RunAllSeeds(db *gorm.DB) {
	departments.SeedDepartmentsFromJSON(db, "internals/seeds/departments/data_departments.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	volunteers.SeedVolunteersFromJSON(db, "internals/seeds/volunteers/data_volunteers.json")
}
