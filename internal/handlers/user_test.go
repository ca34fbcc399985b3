package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/jwt"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"name":"John Smith","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John Smith", "john@example.com", "secret").
					Return(&models.UserDB{UserID: userID, Name: "John Smith", Email: "john@example.com", PasswordHash: "hash"}, "token123", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: `{"name":"John Smith","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John Smith", "john@example.com", "secret").
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "User already registered.",
		},
		{
			name: "internal server error",
			body: `{"name":"John Smith","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John Smith", "john@example.com", "secret").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Something failed.",
		},
		{
			name:         "invalid email",
			body:         `{"name":"John Smith","email":"john","password":"secret"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  `"email" must be a valid email`,
		},
		{
			name:         "password over 72 characters",
			body:         `{"name":"John Smith","email":"john@example.com","password":"` + strings.Repeat("a", 100) + `"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  `"password" length must be less than or equal to 72 characters long`,
		},
		{
			name: "password over 72 bytes",
			body: `{"name":"John Smith","email":"john@example.com","password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John Smith", "john@example.com", strings.Repeat("é", 40)).
					Return(nil, "", services.ErrPasswordTooLong)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  `"password" length must be less than or equal to 72 bytes long`,
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/users", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
				return
			}

			assert.Equal(t, "token123", rr.Header().Get(jwt.HeaderAuthToken))
			assert.NotContains(t, rr.Body.String(), "hash")

			var got models.UserResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, models.UserResponse{ID: userID, Name: "John Smith", Email: "john@example.com"}, got)
		})
	}
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	userID := uuid.New()

	rr := httptest.NewRecorder()
	NewMeHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/users/me", "", ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := newRequest(http.MethodGet, "/api/users/me", "", "")
	req = req.WithContext(jwt.WithClaims(req.Context(), &jwt.Claims{UserID: userID, IsAdmin: true}))

	mockSvc.EXPECT().Me(gomock.Any(), userID).Return(&models.UserDB{UserID: userID, Name: "Admin User", IsAdmin: true}, nil)
	rr = httptest.NewRecorder()
	NewMeHandler(mockSvc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"isAdmin":true`)

	mockSvc.EXPECT().Me(gomock.Any(), userID).Return(nil, services.ErrUserDoesNotExist)
	rr = httptest.NewRecorder()
	NewMeHandler(mockSvc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedToken string
		expectedErr   string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return("token123", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "token123",
		},
		{
			name: "unknown user",
			body: `{"email":"nobody@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "nobody@example.com", "secret").Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid email or password.",
		},
		{
			name: "wrong password",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid email or password.",
		},
		{
			name:         "missing password",
			body:         `{"email":"john@example.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  `"password" is required`,
		},
		{
			name: "internal error",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john@example.com", "secret").Return("", errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/auth", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedToken != "" {
				var resp models.LoginResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedToken, resp.Token)
			}
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
			}
		})
	}
}
