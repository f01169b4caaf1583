package config

import (
	"os"

	"crm-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// Migrate registers the contact_customer join table and migrates the
// schema. The join table has to be set up before AutoMigrate so it is
// created with its surrogate key, timestamps and the unique
// (contact_id, customer_id) index instead of GORM's default layout.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Customer{}, "Contacts", &models.ContactCustomer{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Contact{}, "Customers", &models.ContactCustomer{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.CustomerCategory{},
		&models.Customer{},
		&models.Contact{},
	)
}
