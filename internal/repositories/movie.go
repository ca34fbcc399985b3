package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/models"
)

const movieColumns = `id, title, genre_id AS "genre.id", genre_name AS "genre.name", number_in_stock, daily_rental_rate`

var movieSortColumns = map[string]string{
	"title":           "title",
	"genre":           "genre_name",
	"numberInStock":   "number_in_stock",
	"dailyRentalRate": "daily_rental_rate",
}

// MovieReadRepository handles movie read operations
type MovieReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMovieReadRepository(db *sqlx.DB, txGetter TxGetter) *MovieReadRepository {
	return &MovieReadRepository{db: db, txGetter: txGetter}
}

// List returns every movie ordered by the requested sort key (default title).
func (r *MovieReadRepository) List(ctx context.Context, sort string) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY ` + orderBy(sort, movieSortColumns, "title")

	movies := []models.Movie{}
	err := sqlx.SelectContext(ctx, r.db, &movies, query)

	logQuery(query, nil, len(movies), err)

	return movies, err
}

// GetByID returns the movie or nil when it does not exist.
func (r *MovieReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &movie, query, id)

	logQuery(query, []any{id}, movie, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// MovieWriteRepository handles movie write operations
type MovieWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMovieWriteRepository(db *sqlx.DB, txGetter TxGetter) *MovieWriteRepository {
	return &MovieWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a movie, assigning a new id when none is set.
func (r *MovieWriteRepository) Save(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	query := `
		INSERT INTO movies (id, title, genre_id, genre_name, number_in_stock, daily_rental_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + movieColumns

	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}
	args := []any{movie.ID, movie.Title, movie.Genre.ID, movie.Genre.Name, movie.NumberInStock, movie.DailyRentalRate}

	var saved models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(query, args, saved, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites every movie field. It returns nil when the movie does not exist.
func (r *MovieWriteRepository) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	query := `
		UPDATE movies
		SET title = $2, genre_id = $3, genre_name = $4, number_in_stock = $5, daily_rental_rate = $6
		WHERE id = $1
		RETURNING ` + movieColumns

	args := []any{movie.ID, movie.Title, movie.Genre.ID, movie.Genre.Name, movie.NumberInStock, movie.DailyRentalRate}

	var updated models.Movie
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

// Delete removes a movie and returns it, or nil when it does not exist.
func (r *MovieWriteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	query := `DELETE FROM movies WHERE id = $1 RETURNING ` + movieColumns

	var deleted models.Movie
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deleted, query, id)

	logQuery(query, []any{id}, deleted, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// DecrementStock takes one copy out of stock. It reports false when the movie
// is missing or has no copies left, leaving the row untouched.
func (r *MovieWriteRepository) DecrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1
		WHERE id = $1 AND number_in_stock > 0
		RETURNING number_in_stock
	`

	var stock int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stock, query, id)

	logQuery(query, []any{id}, stock, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrementStock puts one copy back. It reports false when the movie no longer exists.
func (r *MovieWriteRepository) IncrementStock(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1
		WHERE id = $1
		RETURNING number_in_stock
	`

	var stock int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stock, query, id)

	logQuery(query, []any{id}, stock, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
