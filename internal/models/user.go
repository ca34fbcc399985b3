package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`      // Admin privilege
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserRequest represents the JSON body for user registration
// swagger:model UserRequest
type UserRequest struct {
	// Name
	// required: true
	// example: John Smith
	Name string `json:"name" validate:"required,min=5,max=50"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,min=5,max=255"`

	// Password, at most 72 bytes
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=5,max=72"`
}

// UserResponse is the public view of a user
// swagger:model UserResponse
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

// NewUserResponse hides the password hash and timestamps.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{ID: u.UserID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,max=1024"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
