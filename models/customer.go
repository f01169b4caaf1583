package models

import "time"

// Customer is a business entity that uses our products and services.
// It belongs to a CustomerCategory and can have many contacts attached.
type Customer struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Reference          string    `gorm:"size:255;not null" json:"reference"`
	StartedAt          time.Time `gorm:"not null" json:"started_at"`
	Description        string    `gorm:"type:text" json:"description"`
	CustomerCategoryID uint      `gorm:"not null;index" json:"customer_category_id"`
	Status             string    `gorm:"size:255" json:"status"`

	CustomerCategory *CustomerCategory `gorm:"foreignKey:CustomerCategoryID" json:"customer_category,omitempty"`

	// Many-to-many on purpose: one person can represent multiple
	// customers (contractors, agencies, etc).
	Contacts []Contact `gorm:"many2many:contact_customer;constraint:OnDelete:CASCADE" json:"contacts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
