package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TicketModel{},
	}
}
