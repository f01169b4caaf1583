package models

import "time"

// CustomerCategory is the subscription level assigned to a customer
// (Bronze, Silver, Gold at time of writing). Stored in the database
// rather than as an enum so categories can be managed later.
type CustomerCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerCategory) TableName() string {
	return "customer_categories"
}
