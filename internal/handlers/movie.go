package handlers

//go:generate mockgen -source=movie.go -destination=movie_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
)

const movieNotFound = "The movie with the given ID was not found."

// MovieLister lists movies.
type MovieLister interface {
	List(ctx context.Context, sort string) ([]models.Movie, error)
}

// MovieGetter fetches one movie.
type MovieGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Movie, error)
}

// MovieCreator creates movies.
type MovieCreator interface {
	Create(ctx context.Context, in services.MovieInput) (*models.Movie, error)
}

// MovieUpdater updates movies.
type MovieUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in services.MovieInput) (*models.Movie, error)
}

// MovieDeleter deletes movies.
type MovieDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) (*models.Movie, error)
}

// NewListMoviesHandler returns an HTTP handler listing all movies.
// @Summary List movies
// @Tags movies
// @Produce json
// @Param sort query string false "Sort key: title, genre, numberInStock, dailyRentalRate; prefix with - for descending"
// @Success 200 {array} models.Movie
// @Failure 500 {object} models.ErrorResponse
// @Router /movies [get]
func NewListMoviesHandler(svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := svc.List(r.Context(), sortParam(r))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, movies)
	}
}

// NewGetMovieHandler returns an HTTP handler fetching one movie.
// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} models.ErrorResponse
// @Router /movies/{id} [get]
func NewGetMovieHandler(svc MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, movieNotFound)
		if !ok {
			return
		}

		movie, err := svc.Get(r.Context(), id)
		if err != nil {
			writeMovieError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

// NewCreateMovieHandler returns an HTTP handler creating a movie.
// @Summary Create a movie
// @Description The referenced genre is copied into the movie.
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body models.MovieRequest true "Movie"
// @Success 201 {object} models.Movie
// @Failure 400 {object} models.ErrorResponse "Validation failed or unknown genre"
// @Failure 401 {object} models.ErrorResponse
// @Router /movies [post]
func NewCreateMovieHandler(svc MovieCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.MovieRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		movie, err := svc.Create(r.Context(), movieInput(req))
		if err != nil {
			writeMovieError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, movie)
	}
}

// NewUpdateMovieHandler returns an HTTP handler updating a movie.
// @Summary Update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Param movie body models.MovieRequest true "Movie"
// @Success 200 {object} models.Movie
// @Failure 400 {object} models.ErrorResponse "Validation failed or unknown genre"
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /movies/{id} [put]
func NewUpdateMovieHandler(svc MovieUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, movieNotFound)
		if !ok {
			return
		}

		var req models.MovieRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		movie, err := svc.Update(r.Context(), id, movieInput(req))
		if err != nil {
			writeMovieError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

// NewDeleteMovieHandler returns an HTTP handler deleting a movie.
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /movies/{id} [delete]
func NewDeleteMovieHandler(svc MovieDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, movieNotFound)
		if !ok {
			return
		}

		movie, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeMovieError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

// movieInput converts a validated request.
func movieInput(req models.MovieRequest) services.MovieInput {
	return services.MovieInput{
		Title:           req.Title,
		GenreID:         uuid.MustParse(req.GenreID),
		NumberInStock:   *req.NumberInStock,
		DailyRentalRate: *req.DailyRentalRate,
	}
}

func writeMovieError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, movieNotFound)
	case errors.Is(err, services.ErrInvalidGenre):
		writeError(w, http.StatusBadRequest, "Invalid genre.")
	default:
		writeInternalError(w, r, err)
	}
}
