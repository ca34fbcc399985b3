package services

//go:generate mockgen -source=genre.go -destination=genre_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
)

// GenreReader defines read-only operations for genres.
type GenreReader interface {
	List(ctx context.Context, sort string) ([]models.Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
}

// GenreWriter defines write operations for genres.
type GenreWriter interface {
	Save(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	Update(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Genre, error)
}

// GenreCache keeps genre snapshots close to the movie writers.
type GenreCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	Set(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GenreService handles genre CRUD and keeps the genre cache consistent.
type GenreService struct {
	reader     GenreReader
	writer     GenreWriter
	cache      GenreCache
	evictDelay time.Duration
}

// GenreOpt configures a GenreService.
type GenreOpt func(*GenreService)

// WithEvictDelay makes every eviction repeat once after d. A movie write that
// read the genre before an update can refill the cache after the first
// eviction; the second one removes that snapshot.
func WithEvictDelay(d time.Duration) GenreOpt {
	return func(svc *GenreService) { svc.evictDelay = d }
}

// NewGenreService creates a new GenreService. cache may be nil.
func NewGenreService(reader GenreReader, writer GenreWriter, cache GenreCache, opts ...GenreOpt) *GenreService {
	svc := &GenreService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// List returns all genres.
func (svc *GenreService) List(ctx context.Context, sort string) ([]models.Genre, error) {
	genres, err := svc.reader.List(ctx, sort)
	if err != nil {
		logger.Log.Errorw("failed to list genres", "sort", sort, "err", err)
		return nil, err
	}
	return genres, nil
}

// Get returns a single genre.
func (svc *GenreService) Get(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	genre, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}
	return genre, nil
}

// Create stores a new genre.
func (svc *GenreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := svc.writer.Save(ctx, &models.Genre{Name: name})
	if err != nil {
		logger.Log.Errorw("failed to save genre", "name", name, "err", err)
		return nil, err
	}
	return genre, nil
}

// Update renames a genre. Movies keep the snapshot they were written with.
func (svc *GenreService) Update(ctx context.Context, id uuid.UUID, name string) (*models.Genre, error) {
	genre, err := svc.writer.Update(ctx, &models.Genre{ID: id, Name: name})
	if err != nil {
		logger.Log.Errorw("failed to update genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	svc.evict(ctx, id)
	return genre, nil
}

// Delete removes a genre and returns it.
func (svc *GenreService) Delete(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	genre, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	svc.evict(ctx, id)
	return genre, nil
}

func (svc *GenreService) evict(ctx context.Context, id uuid.UUID) {
	if svc.cache == nil {
		return
	}
	svc.deleteCached(ctx, id)

	if svc.evictDelay > 0 {
		time.AfterFunc(svc.evictDelay, func() {
			svc.deleteCached(context.Background(), id)
		})
	}
}

func (svc *GenreService) deleteCached(ctx context.Context, id uuid.UUID) {
	if err := svc.cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to evict cached genre", "id", id, "err", err)
	}
}
