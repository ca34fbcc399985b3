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
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGenresHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenreLister(ctrl)
	genres := []models.Genre{{ID: uuid.New(), Name: "Action"}}

	mockSvc.EXPECT().List(gomock.Any(), "-name").Return(genres, nil)

	rr := httptest.NewRecorder()
	NewListGenresHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/genres?sort=-name", "", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Genre
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, genres, got)

	mockSvc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db error"))

	rr = httptest.NewRecorder()
	NewListGenresHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/genres", "", ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockGenreGetter)
		expectedCode int
	}{
		{
			name: "found",
			id:   id.String(),
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(&models.Genre{ID: id, Name: "Action"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrGenreNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "1",
			expectedCode: http.StatusNotFound,
		},
		{
			name: "internal error",
			id:   id.String(),
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGenreGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewGetGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodGet, "/api/genres/"+tt.id, "", tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusNotFound {
				assert.Equal(t, genreNotFound, decodeError(t, rr))
			}
		})
	}
}

func TestCreateGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockGenreCreator)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"name":"Comedy"}`,
			mockSetup: func(m *MockGenreCreator) {
				m.EXPECT().Create(gomock.Any(), "Comedy").Return(&models.Genre{ID: uuid.New(), Name: "Comedy"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "name too short",
			body:         `{"name":"abcd"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "name too long",
			body:         `{"name":"` + strings.Repeat("a", 51) + `"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `name=Comedy`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"name":"Comedy"}`,
			mockSetup: func(m *MockGenreCreator) {
				m.EXPECT().Create(gomock.Any(), "Comedy").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGenreCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewCreateGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/genres", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenreUpdater(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Update(gomock.Any(), id, "Thriller").Return(&models.Genre{ID: id, Name: "Thriller"}, nil)
	rr := httptest.NewRecorder()
	NewUpdateGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/", `{"name":"Thriller"}`, id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Update(gomock.Any(), id, "Thriller").Return(nil, services.ErrGenreNotFound)
	rr = httptest.NewRecorder()
	NewUpdateGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/", `{"name":"Thriller"}`, id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	NewUpdateGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPut, "/", `{"name":"abc"}`, id.String()))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenreDeleter(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(&models.Genre{ID: id, Name: "Action"}, nil)
	rr := httptest.NewRecorder()
	NewDeleteGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", id.String()))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Delete(gomock.Any(), id).Return(nil, services.ErrGenreNotFound)
	rr = httptest.NewRecorder()
	NewDeleteGenreHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodDelete, "/", "", id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
