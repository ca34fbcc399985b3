package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/models"
)

const customerColumns = `id, name, phone, is_gold`

var customerSortColumns = map[string]string{
	"name":   "name",
	"phone":  "phone",
	"isGold": "is_gold",
}

// CustomerReadRepository handles customer read operations
type CustomerReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCustomerReadRepository(db *sqlx.DB, txGetter TxGetter) *CustomerReadRepository {
	return &CustomerReadRepository{db: db, txGetter: txGetter}
}

// List returns every customer ordered by the requested sort key (default name).
func (r *CustomerReadRepository) List(ctx context.Context, sort string) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY ` + orderBy(sort, customerSortColumns, "name")

	customers := []models.Customer{}
	err := sqlx.SelectContext(ctx, r.db, &customers, query)

	logQuery(query, nil, len(customers), err)

	return customers, err
}

// GetByID returns the customer or nil when it does not exist.
func (r *CustomerReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var customer models.Customer
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &customer, query, id)

	logQuery(query, []any{id}, customer, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CustomerWriteRepository handles customer write operations
type CustomerWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCustomerWriteRepository(db *sqlx.DB, txGetter TxGetter) *CustomerWriteRepository {
	return &CustomerWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a customer, assigning a new id when none is set.
func (r *CustomerWriteRepository) Save(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `INSERT INTO customers (id, name, phone, is_gold) VALUES ($1, $2, $3, $4) RETURNING ` + customerColumns

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	args := []any{customer.ID, customer.Name, customer.Phone, customer.IsGold}

	var saved models.Customer
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(query, args, saved, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites every customer field. It returns nil when the customer does not exist.
func (r *CustomerWriteRepository) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `UPDATE customers SET name = $2, phone = $3, is_gold = $4 WHERE id = $1 RETURNING ` + customerColumns

	args := []any{customer.ID, customer.Name, customer.Phone, customer.IsGold}

	var updated models.Customer
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

// Delete removes a customer and returns it, or nil when it does not exist.
func (r *CustomerWriteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := `DELETE FROM customers WHERE id = $1 RETURNING ` + customerColumns

	var deleted models.Customer
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
