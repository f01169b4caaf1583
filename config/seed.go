package config

import (
	"crm-backend/models"

	"gorm.io/gorm"
)

// SeedCustomerCategories inserts the launch categories when the table
// is empty. Safe to call on every startup.
func SeedCustomerCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CustomerCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// we only have three CustomerCategories at time of writing
	for _, name := range []string{"Bronze", "Silver", "Gold"} {
		if err := db.Create(&models.CustomerCategory{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
