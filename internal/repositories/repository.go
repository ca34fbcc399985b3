package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vidly/internal/logger"
)

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery writes the query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// orderBy maps a client sort key ("name", "-name") to an ORDER BY clause.
// Unknown keys fall back to def, which must itself be a valid key.
func orderBy(sort string, columns map[string]string, def string) string {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = def
	}

	desc := strings.HasPrefix(sort, "-")
	column, ok := columns[strings.TrimPrefix(sort, "-")]
	if !ok {
		desc = strings.HasPrefix(def, "-")
		column = columns[strings.TrimPrefix(def, "-")]
	}

	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
