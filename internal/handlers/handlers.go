package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/middlewares"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"uri", r.RequestURI,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "Something failed.")
}

// decodeRequest reads a JSON body into v and checks its validate tags.
// It answers 400 and returns false on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	if err := validation.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// idParam returns the {id} path parameter. A malformed id answers 404 with
// notFound, the same as an id that matches nothing.
func idParam(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func sortParam(r *http.Request) string {
	return r.URL.Query().Get("sort")
}
