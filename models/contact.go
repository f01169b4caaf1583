package models

import "time"

// Contact is a person users can reach out to. Contacts are attached to
// customers through the contact_customer join table.
type Contact struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:255;not null" json:"first_name"`
	LastName  string `gorm:"size:255;not null" json:"last_name"`

	Customers []Customer `gorm:"many2many:contact_customer;constraint:OnDelete:CASCADE" json:"customers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
