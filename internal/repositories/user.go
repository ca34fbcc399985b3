package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/models"
)

const userColumns = `id, name, email, password_hash, is_admin, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user registered with email, or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id, or nil.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user. A taken email yields ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	if user.UserID == uuid.Nil {
		user.UserID = uuid.New()
	}
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.IsAdmin}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	// Never log the password hash
	logQuery(query, []any{user.UserID, user.Name, user.Email, user.IsAdmin}, saved.UserID, err)

	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
