package migration

import (
	"fmt"

	"gorm.io/gorm"

	"deskline/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for every persistence model.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.TicketModel{},
		&models.TicketLogModel{},
		&models.AgentModel{},
		&models.ItemModel{},
		&models.LocalKVModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}

	return nil
}
