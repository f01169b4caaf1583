package models

import "time"

// ContactCustomer is the join row linking a contact to a customer.
// A contact can only be attached to a given customer once.
type ContactCustomer struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContactID  uint `gorm:"not null;uniqueIndex:idx_contact_customer" json:"contact_id"`
	CustomerID uint `gorm:"not null;uniqueIndex:idx_contact_customer" json:"customer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactCustomer) TableName() string {
	return "contact_customer"
}
