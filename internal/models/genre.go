package models

import "github.com/google/uuid"

// Genre represents a genre row in the database
// swagger:model Genre
type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`     // Primary key
	Name string    `json:"name" db:"name"` // Display name, 5-50 characters
}

// GenreRequest represents the JSON body for creating or updating a genre
// swagger:model GenreRequest
type GenreRequest struct {
	// Genre name
	// required: true
	// example: Comedy
	Name string `json:"name" validate:"required,min=5,max=50"`
}
