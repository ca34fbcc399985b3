package handlers

//go:generate mockgen -source=genre.go -destination=genre_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
)

const genreNotFound = "The genre with the given ID was not found."

// GenreLister lists genres.
type GenreLister interface {
	List(ctx context.Context, sort string) ([]models.Genre, error)
}

// GenreGetter fetches one genre.
type GenreGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Genre, error)
}

// GenreCreator creates genres.
type GenreCreator interface {
	Create(ctx context.Context, name string) (*models.Genre, error)
}

// GenreUpdater renames genres.
type GenreUpdater interface {
	Update(ctx context.Context, id uuid.UUID, name string) (*models.Genre, error)
}

// GenreDeleter deletes genres.
type GenreDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) (*models.Genre, error)
}

// NewListGenresHandler returns an HTTP handler listing all genres.
// @Summary List genres
// @Tags genres
// @Produce json
// @Param sort query string false "Sort key: name, -name"
// @Success 200 {array} models.Genre
// @Failure 500 {object} models.ErrorResponse
// @Router /genres [get]
func NewListGenresHandler(svc GenreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.List(r.Context(), sortParam(r))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, genres)
	}
}

// NewGetGenreHandler returns an HTTP handler fetching one genre.
// @Summary Get a genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} models.Genre
// @Failure 404 {object} models.ErrorResponse
// @Router /genres/{id} [get]
func NewGetGenreHandler(svc GenreGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, genreNotFound)
		if !ok {
			return
		}

		genre, err := svc.Get(r.Context(), id)
		if err != nil {
			writeGenreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, genre)
	}
}

// NewCreateGenreHandler returns an HTTP handler creating a genre.
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param genre body models.GenreRequest true "Genre"
// @Success 201 {object} models.Genre
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /genres [post]
func NewCreateGenreHandler(svc GenreCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GenreRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		genre, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, genre)
	}
}

// NewUpdateGenreHandler returns an HTTP handler renaming a genre.
// @Summary Update a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Param genre body models.GenreRequest true "Genre"
// @Success 200 {object} models.Genre
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /genres/{id} [put]
func NewUpdateGenreHandler(svc GenreUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, genreNotFound)
		if !ok {
			return
		}

		var req models.GenreRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		genre, err := svc.Update(r.Context(), id, req.Name)
		if err != nil {
			writeGenreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, genre)
	}
}

// NewDeleteGenreHandler returns an HTTP handler deleting a genre.
// @Summary Delete a genre
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Success 200 {object} models.Genre
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /genres/{id} [delete]
func NewDeleteGenreHandler(svc GenreDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, genreNotFound)
		if !ok {
			return
		}

		genre, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeGenreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, genre)
	}
}

func writeGenreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrGenreNotFound) {
		writeError(w, http.StatusNotFound, genreNotFound)
		return
	}
	writeInternalError(w, r, err)
}
