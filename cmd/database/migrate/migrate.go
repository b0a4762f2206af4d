package migration

import (
	"Food-Wastage-Management/entities"
	"Food-Wastage-Management/internal/utils"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the four tables parents first so the foreign keys of
// food_listings and claims resolve.
func Migrate(db *gorm.DB) error {
	logger := utils.GetLogger()

	if err := db.AutoMigrate(&entities.Provider{}); err != nil {
		utils.LogError(logger, "migration", "Migrate", "providers", nil, err)
		return fmt.Errorf("migrate providers: %w", err)
	}
	if err := db.AutoMigrate(&entities.Receiver{}); err != nil {
		utils.LogError(logger, "migration", "Migrate", "receivers", nil, err)
		return fmt.Errorf("migrate receivers: %w", err)
	}
	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		utils.LogError(logger, "migration", "Migrate", "food_listings", nil, err)
		return fmt.Errorf("migrate food listings: %w", err)
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		utils.LogError(logger, "migration", "Migrate", "claims", nil, err)
		return fmt.Errorf("migrate claims: %w", err)
	}

	logger.Info("Database migration complete")
	return nil
}
