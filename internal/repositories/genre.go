package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/models"
)

var genreSortColumns = map[string]string{
	"name": "name",
	"id":   "id",
}

// GenreReadRepository handles genre read operations
type GenreReadRepository struct {
	db *sqlx.DB
}

func NewGenreReadRepository(db *sqlx.DB) *GenreReadRepository {
	return &GenreReadRepository{db: db}
}

// List returns every genre ordered by the requested sort key (default name).
func (r *GenreReadRepository) List(ctx context.Context, sort string) ([]models.Genre, error) {
	query := `SELECT id, name FROM genres ORDER BY ` + orderBy(sort, genreSortColumns, "name")

	genres := []models.Genre{}
	err := sqlx.SelectContext(ctx, r.db, &genres, query)

	logQuery(query, nil, len(genres), err)

	return genres, err
}

// GetByID returns the genre or nil when it does not exist.
func (r *GenreReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	const query = `SELECT id, name FROM genres WHERE id = $1`

	var genre models.Genre
	err := sqlx.GetContext(ctx, r.db, &genre, query, id)

	logQuery(query, []any{id}, genre, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GenreWriteRepository handles genre write operations
type GenreWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGenreWriteRepository(db *sqlx.DB, txGetter TxGetter) *GenreWriteRepository {
	return &GenreWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a genre, assigning a new id when none is set.
func (r *GenreWriteRepository) Save(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	const query = `INSERT INTO genres (id, name) VALUES ($1, $2) RETURNING id, name`

	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	args := []any{genre.ID, genre.Name}

	var saved models.Genre
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(query, args, saved, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update renames a genre. It returns nil when the genre does not exist.
func (r *GenreWriteRepository) Update(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	const query = `UPDATE genres SET name = $2 WHERE id = $1 RETURNING id, name`

	args := []any{genre.ID, genre.Name}

	var updated models.Genre
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

// Delete removes a genre and returns it, or nil when it does not exist.
func (r *GenreWriteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	const query = `DELETE FROM genres WHERE id = $1 RETURNING id, name`

	var deleted models.Genre
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
