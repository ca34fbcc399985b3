package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
)

// GenreCacheRepository keeps genre snapshots in Redis so movie writes can
// resolve their genre without a database round trip.
type GenreCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewGenreCacheRepository creates a cache whose entries live for expiration.
func NewGenreCacheRepository(client *redis.Client, expiration time.Duration) *GenreCacheRepository {
	return &GenreCacheRepository{client: client, exp: expiration}
}

func genreKey(id uuid.UUID) string {
	return fmt.Sprintf("genre:%s", id)
}

// Get returns the cached genre, or nil on a cache miss.
func (r *GenreCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	key := genreKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("cache get", "key", key, "hit", err == nil, "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var genre models.Genre
	if err := json.Unmarshal(val, &genre); err != nil {
		return nil, err
	}
	return &genre, nil
}

// Set stores the genre with the configured expiration.
func (r *GenreCacheRepository) Set(ctx context.Context, genre *models.Genre) error {
	key := genreKey(genre.ID)

	data, err := json.Marshal(genre)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// Delete evicts the genre; deleting a missing key is not an error.
func (r *GenreCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := genreKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("cache delete", "key", key, "error", err)

	return err
}
