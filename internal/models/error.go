package models

// ErrorResponse represents any error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: The genre with the given ID was not found
	Error string `json:"error"`
}
