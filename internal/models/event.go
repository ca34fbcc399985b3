package models

// Rental event types.
const (
	EventRentalCreated  = "rental.created"
	EventRentalReturned = "rental.returned"
)

// RentalEvent is published to the message broker after a rental changes state.
type RentalEvent struct {
	EventID    string   `json:"event_id"`             // EventID is a unique identifier of the event.
	Type       string   `json:"type"`                 // Type is EventRentalCreated or EventRentalReturned.
	RentalID   string   `json:"rental_id"`            // RentalID identifies the rental record.
	CustomerID string   `json:"customer_id"`          // CustomerID identifies the renting customer.
	MovieID    string   `json:"movie_id"`             // MovieID identifies the rented movie.
	RentalFee  *float64 `json:"rental_fee,omitempty"` // RentalFee is set on returns only.
	Timestamp  int64    `json:"timestamp"`            // Timestamp is the Unix time (seconds) of the change.
}
