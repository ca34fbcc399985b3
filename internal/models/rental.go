package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerSnapshot is the copy of a customer taken when a rental is created.
type CustomerSnapshot struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Phone string    `json:"phone" db:"phone"`
}

// MovieSnapshot is the copy of a movie taken when a rental is created.
type MovieSnapshot struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	DailyRentalRate float64   `json:"dailyRentalRate" db:"daily_rental_rate"`
}

// Rental represents a rental row in the database
// swagger:model Rental
type Rental struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	Customer     CustomerSnapshot `json:"customer" db:"customer"`
	Movie        MovieSnapshot    `json:"movie" db:"movie"`
	DateOut      time.Time        `json:"dateOut" db:"date_out"`
	DateReturned *time.Time       `json:"dateReturned,omitempty" db:"date_returned"` // Set once, by the return
	RentalFee    *float64         `json:"rentalFee,omitempty" db:"rental_fee"`       // Set together with DateReturned
}

// RentalRequest represents the JSON body for creating a rental or processing a return
// swagger:model RentalRequest
type RentalRequest struct {
	// Customer identifier
	// required: true
	CustomerID string `json:"customerId" validate:"required,uuid"`

	// Movie identifier
	// required: true
	MovieID string `json:"movieId" validate:"required,uuid"`
}
