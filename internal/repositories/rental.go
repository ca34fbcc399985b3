package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/models"
)

const rentalColumns = `
	id,
	customer_id AS "customer.id", customer_name AS "customer.name", customer_phone AS "customer.phone",
	movie_id AS "movie.id", movie_title AS "movie.title", movie_daily_rental_rate AS "movie.daily_rental_rate",
	date_out, date_returned, rental_fee`

var rentalSortColumns = map[string]string{
	"dateOut":      "date_out",
	"dateReturned": "date_returned",
	"customer":     "customer_name",
	"movie":        "movie_title",
}

// RentalReadRepository handles rental read operations
type RentalReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRentalReadRepository(db *sqlx.DB, txGetter TxGetter) *RentalReadRepository {
	return &RentalReadRepository{db: db, txGetter: txGetter}
}

// List returns every rental ordered by the requested sort key (default newest first).
func (r *RentalReadRepository) List(ctx context.Context, sort string) ([]models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY ` + orderBy(sort, rentalSortColumns, "-dateOut")

	rentals := []models.Rental{}
	err := sqlx.SelectContext(ctx, r.db, &rentals, query)

	logQuery(query, nil, len(rentals), err)

	return rentals, err
}

// GetByID returns the rental or nil when it does not exist.
func (r *RentalReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

	var rental models.Rental
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rental, query, id)

	logQuery(query, []any{id}, rental, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// GetByCustomerAndMovie returns the rental of movieID by customerID that a
// return should act on: the newest open one, else the newest closed one.
// It returns nil when the pair never rented.
func (r *RentalReadRepository) GetByCustomerAndMovie(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error) {
	query := `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE customer_id = $1 AND movie_id = $2
		ORDER BY (date_returned IS NULL) DESC, date_out DESC
		LIMIT 1`

	args := []any{customerID, movieID}

	var rental models.Rental
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rental, query, args...)

	logQuery(query, args, rental, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// RentalWriteRepository handles rental write operations
type RentalWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRentalWriteRepository(db *sqlx.DB, txGetter TxGetter) *RentalWriteRepository {
	return &RentalWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a rental with its customer and movie snapshots.
func (r *RentalWriteRepository) Save(ctx context.Context, rental *models.Rental) (*models.Rental, error) {
	query := `
		INSERT INTO rentals (
			id, customer_id, customer_name, customer_phone,
			movie_id, movie_title, movie_daily_rental_rate,
			date_out, date_returned, rental_fee
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + rentalColumns

	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}
	if rental.DateOut.IsZero() {
		rental.DateOut = time.Now().UTC()
	}
	args := []any{
		rental.ID, rental.Customer.ID, rental.Customer.Name, rental.Customer.Phone,
		rental.Movie.ID, rental.Movie.Title, rental.Movie.DailyRentalRate,
		rental.DateOut, rental.DateReturned, rental.RentalFee,
	}

	var saved models.Rental
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(query, args, saved, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetReturned closes an open rental. It returns nil when the rental is
// missing or was already returned, so a rental is closed at most once.
func (r *RentalWriteRepository) SetReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time, fee float64) (*models.Rental, error) {
	query := `
		UPDATE rentals
		SET date_returned = $2, rental_fee = $3
		WHERE id = $1 AND date_returned IS NULL
		RETURNING ` + rentalColumns

	args := []any{id, returnedAt, fee}

	var updated models.Rental
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
