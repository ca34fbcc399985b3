package models

import "github.com/google/uuid"

// GenreSnapshot is the copy of a genre embedded in a movie when the movie is written.
type GenreSnapshot struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// Movie represents a movie row in the database
// swagger:model Movie
type Movie struct {
	ID              uuid.UUID     `json:"id" db:"id"`                             // Primary key
	Title           string        `json:"title" db:"title"`                       // Title, at least 5 characters
	Genre           GenreSnapshot `json:"genre" db:"genre"`                       // Genre at the time of the last write
	NumberInStock   int           `json:"numberInStock" db:"number_in_stock"`     // Copies available for rent
	DailyRentalRate float64       `json:"dailyRentalRate" db:"daily_rental_rate"` // Price per rented day
}

// MovieRequest represents the JSON body for creating or updating a movie
// swagger:model MovieRequest
type MovieRequest struct {
	// Movie title
	// required: true
	// example: Terminator
	Title string `json:"title" validate:"required,min=5,max=255"`

	// Identifier of an existing genre
	// required: true
	GenreID string `json:"genreId" validate:"required,uuid"`

	// Copies in stock
	// required: true
	// example: 10
	NumberInStock *int `json:"numberInStock" validate:"required,min=0,max=255"`

	// Price per day
	// required: true
	// example: 2
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"required,min=0,max=255"`
}
