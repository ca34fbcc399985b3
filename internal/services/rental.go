package services

//go:generate mockgen -source=rental.go -destination=rental_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
)

// RentalReader defines read-only operations for rentals.
type RentalReader interface {
	List(ctx context.Context, sort string) ([]models.Rental, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	GetByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error)
}

// RentalWriter defines write operations for rentals.
type RentalWriter interface {
	Save(ctx context.Context, rental *models.Rental) (*models.Rental, error)
	SetReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time, fee float64) (*models.Rental, error)
}

// StockWriter moves a movie's stock by one copy. Both methods report false
// when no row changed.
type StockWriter interface {
	DecrementStock(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID) (bool, error)
}

// EventPublisher delivers rental events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event models.RentalEvent) error
}

// RentalService runs the rental and return workflow.
//
// Create and Return issue several writes; callers run them inside one
// request transaction so a failed step leaves no partial state behind.
type RentalService struct {
	reader    RentalReader
	writer    RentalWriter
	customers CustomerReader
	movies    MovieReader
	stock     StockWriter
	publisher EventPublisher
}

// NewRentalService creates a new RentalService. publisher may be nil.
func NewRentalService(
	reader RentalReader,
	writer RentalWriter,
	customers CustomerReader,
	movies MovieReader,
	stock StockWriter,
	publisher EventPublisher,
) *RentalService {
	return &RentalService{
		reader:    reader,
		writer:    writer,
		customers: customers,
		movies:    movies,
		stock:     stock,
		publisher: publisher,
	}
}

// List returns all rentals.
func (svc *RentalService) List(ctx context.Context, sort string) ([]models.Rental, error) {
	rentals, err := svc.reader.List(ctx, sort)
	if err != nil {
		logger.Log.Errorw("failed to list rentals", "sort", sort, "err", err)
		return nil, err
	}
	return rentals, nil
}

// Get returns a single rental.
func (svc *RentalService) Get(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	rental, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get rental", "id", id, "err", err)
		return nil, err
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	return rental, nil
}

// Create rents one copy of a movie to a customer and takes it out of stock.
func (svc *RentalService) Create(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error) {
	customer, err := svc.customers.GetByID(ctx, customerID)
	if err != nil {
		logger.Log.Errorw("failed to get customer", "customerID", customerID, "err", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrInvalidCustomer
	}

	movie, err := svc.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrInvalidMovie
	}
	if movie.NumberInStock <= 0 {
		return nil, ErrMovieOutOfStock
	}

	rental, err := svc.writer.Save(ctx, &models.Rental{
		Customer: models.CustomerSnapshot{ID: customer.ID, Name: customer.Name, Phone: customer.Phone},
		Movie:    models.MovieSnapshot{ID: movie.ID, Title: movie.Title, DailyRentalRate: movie.DailyRentalRate},
		DateOut:  time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to save rental", "customerID", customerID, "movieID", movieID, "err", err)
		return nil, err
	}

	// The stock may have reached zero since the read above.
	ok, err := svc.stock.DecrementStock(ctx, movie.ID)
	if err != nil {
		logger.Log.Errorw("failed to decrement stock", "movieID", movieID, "err", err)
		return nil, err
	}
	if !ok {
		return nil, ErrMovieOutOfStock
	}

	svc.publish(ctx, models.EventRentalCreated, rental)

	return rental, nil
}

// Return closes the customer's rental of a movie, charges the rental fee
// and puts the copy back in stock.
func (svc *RentalService) Return(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error) {
	rental, err := svc.reader.GetByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get rental", "customerID", customerID, "movieID", movieID, "err", err)
		return nil, err
	}
	if rental == nil {
		return nil, ErrRentalNotFound
	}
	if rental.DateReturned != nil {
		return nil, ErrRentalAlreadyReturned
	}

	returnedAt := time.Now().UTC()
	fee := RentalFee(rental.DateOut, returnedAt, rental.Movie.DailyRentalRate)

	returned, err := svc.writer.SetReturned(ctx, rental.ID, returnedAt, fee)
	if err != nil {
		logger.Log.Errorw("failed to set rental returned", "rentalID", rental.ID, "err", err)
		return nil, err
	}
	if returned == nil {
		// Closed by a concurrent return.
		return nil, ErrRentalAlreadyReturned
	}

	ok, err := svc.stock.IncrementStock(ctx, rental.Movie.ID)
	if err != nil {
		logger.Log.Errorw("failed to increment stock", "movieID", rental.Movie.ID, "err", err)
		return nil, err
	}
	if !ok {
		logger.Log.Warnw("returned movie no longer exists, stock not restored", "movieID", rental.Movie.ID)
	}

	svc.publish(ctx, models.EventRentalReturned, returned)

	return returned, nil
}

// publish sends a rental event. Failures are logged and never fail the caller.
func (svc *RentalService) publish(ctx context.Context, eventType string, rental *models.Rental) {
	if svc.publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping publishing", "type", eventType, "rental_id", rental.ID)
		return
	}

	event := models.RentalEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RentalID:   rental.ID.String(),
		CustomerID: rental.Customer.ID.String(),
		MovieID:    rental.Movie.ID.String(),
		RentalFee:  rental.RentalFee,
		Timestamp:  time.Now().Unix(),
	}

	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish rental event", "event_id", event.EventID, "type", eventType, "err", err)
		return
	}
	logger.Log.Infow("rental event published", "event_id", event.EventID, "type", eventType, "rental_id", event.RentalID)
}

// BilledDays is the number of calendar days (UTC) between dateOut and
// dateReturned. A rental returned on the day it went out is billed one day.
func BilledDays(dateOut, dateReturned time.Time) int {
	out := truncateToDay(dateOut)
	ret := truncateToDay(dateReturned)

	days := int(ret.Sub(out).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// RentalFee is the amount owed for a rental: billed days times the daily rate.
func RentalFee(dateOut, dateReturned time.Time, dailyRentalRate float64) float64 {
	return float64(BilledDays(dateOut, dateReturned)) * dailyRentalRate
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
