package services

//go:generate mockgen -source=movie.go -destination=movie_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
)

// MovieReader defines read-only operations for movies.
type MovieReader interface {
	List(ctx context.Context, sort string) ([]models.Movie, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
}

// MovieWriter defines write operations for movies.
type MovieWriter interface {
	Save(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Movie, error)
}

// MovieInput carries the writable fields of a movie.
type MovieInput struct {
	Title           string
	GenreID         uuid.UUID
	NumberInStock   int
	DailyRentalRate float64
}

// MovieService handles movie CRUD. Every write embeds a fresh genre snapshot.
type MovieService struct {
	reader MovieReader
	writer MovieWriter
	genres GenreReader
	cache  GenreCache
}

// NewMovieService creates a new MovieService. cache may be nil.
func NewMovieService(reader MovieReader, writer MovieWriter, genres GenreReader, cache GenreCache) *MovieService {
	return &MovieService{
		reader: reader,
		writer: writer,
		genres: genres,
		cache:  cache,
	}
}

// List returns all movies.
func (svc *MovieService) List(ctx context.Context, sort string) ([]models.Movie, error) {
	movies, err := svc.reader.List(ctx, sort)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "sort", sort, "err", err)
		return nil, err
	}
	return movies, nil
}

// Get returns a single movie.
func (svc *MovieService) Get(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	movie, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "id", id, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// Create stores a new movie. An unknown genre yields ErrInvalidGenre.
func (svc *MovieService) Create(ctx context.Context, in MovieInput) (*models.Movie, error) {
	genre, err := svc.resolveGenre(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}

	movie, err := svc.writer.Save(ctx, newMovie(uuid.Nil, in, genre))
	if err != nil {
		logger.Log.Errorw("failed to save movie", "title", in.Title, "err", err)
		return nil, err
	}
	return movie, nil
}

// Update replaces a movie's fields. An unknown genre yields ErrInvalidGenre,
// an unknown movie ErrMovieNotFound.
func (svc *MovieService) Update(ctx context.Context, id uuid.UUID, in MovieInput) (*models.Movie, error) {
	genre, err := svc.resolveGenre(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}

	movie, err := svc.writer.Update(ctx, newMovie(id, in, genre))
	if err != nil {
		logger.Log.Errorw("failed to update movie", "id", id, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// Delete removes a movie and returns it.
func (svc *MovieService) Delete(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	movie, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete movie", "id", id, "err", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// resolveGenre looks the genre up in the cache first and fills the cache on a miss.
func (svc *MovieService) resolveGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	if svc.cache != nil {
		genre, err := svc.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to read cached genre", "id", id, "err", err)
		}
		if genre != nil {
			return genre, nil
		}
	}

	genre, err := svc.genres.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get genre", "id", id, "err", err)
		return nil, err
	}
	if genre == nil {
		return nil, ErrInvalidGenre
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, genre); err != nil {
			logger.Log.Errorw("failed to cache genre", "id", id, "err", err)
		}
	}
	return genre, nil
}

func newMovie(id uuid.UUID, in MovieInput, genre *models.Genre) *models.Movie {
	return &models.Movie{
		ID:              id,
		Title:           in.Title,
		Genre:           models.GenreSnapshot{ID: genre.ID, Name: genre.Name},
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}
}
