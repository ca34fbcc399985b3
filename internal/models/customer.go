package models

import "github.com/google/uuid"

// Customer represents a customer row in the database
// swagger:model Customer
type Customer struct {
	ID     uuid.UUID `json:"id" db:"id"`          // Primary key
	Name   string    `json:"name" db:"name"`      // Full name, 5-50 characters
	Phone  string    `json:"phone" db:"phone"`    // Phone number, exactly 9 characters
	IsGold bool      `json:"isGold" db:"is_gold"` // Gold membership flag
}

// CustomerRequest represents the JSON body for creating or updating a customer
// swagger:model CustomerRequest
type CustomerRequest struct {
	// Customer name
	// required: true
	// example: John Smith
	Name string `json:"name" validate:"required,min=5,max=50"`

	// Phone number
	// required: true
	// example: 998289230
	Phone string `json:"phone" validate:"required,len=9"`

	// Gold membership, false when omitted
	IsGold bool `json:"isGold"`
}
