package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/jwt"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.UserDB, string, error)
}

// ProfileGetter returns the profile of a user.
type ProfileGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// Loginer authenticates users.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must be unique. The access token is returned in the x-auth-token header.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserRequest true "User registration request"
// @Success 201 {object} models.UserResponse "User successfully registered"
// @Header 201 {string} x-auth-token "Access token"
// @Failure 400 {object} models.ErrorResponse "Validation failed, password too long or user already registered"
// @Router /users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "User already registered.")
				return
			}
			if errors.Is(err, services.ErrPasswordTooLong) {
				writeError(w, http.StatusBadRequest, `"password" length must be less than or equal to 72 bytes long`)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		w.Header().Set(jwt.HeaderAuthToken, token)
		w.Header().Set("Access-Control-Expose-Headers", jwt.HeaderAuthToken)
		writeJSON(w, http.StatusCreated, models.NewUserResponse(user))
	}
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeError(w, http.StatusNotFound, "User not found.")
				return
			}
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Exchanges email and password for an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Invalid email or password"
// @Router /auth [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) || errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusBadRequest, "Invalid email or password.")
				return
			}
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
	}
}
