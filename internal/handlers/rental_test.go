package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateRentalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID, movieID := uuid.New(), uuid.New()
	body := `{"customerId":"` + customerID.String() + `","movieId":"` + movieID.String() + `"}`

	tests := []struct {
		name         string
		body         string
		svcErr       error
		callSvc      bool
		expectedCode int
		expectedErr  string
	}{
		{name: "success", body: body, callSvc: true, expectedCode: http.StatusCreated},
		{name: "unknown customer", body: body, callSvc: true, svcErr: services.ErrInvalidCustomer, expectedCode: http.StatusBadRequest, expectedErr: "Invalid customer."},
		{name: "unknown movie", body: body, callSvc: true, svcErr: services.ErrInvalidMovie, expectedCode: http.StatusBadRequest, expectedErr: "Invalid movie."},
		{name: "out of stock", body: body, callSvc: true, svcErr: services.ErrMovieOutOfStock, expectedCode: http.StatusConflict, expectedErr: "Movie not in stock."},
		{name: "internal error", body: body, callSvc: true, svcErr: errors.New("db error"), expectedCode: http.StatusInternalServerError},
		{name: "missing customer", body: `{"movieId":"` + movieID.String() + `"}`, expectedCode: http.StatusBadRequest, expectedErr: `"customerId" is required`},
		{name: "malformed movie", body: `{"customerId":"` + customerID.String() + `","movieId":"1"}`, expectedCode: http.StatusBadRequest, expectedErr: `"movieId" must be a valid id`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRentalCreator(ctrl)
			if tt.callSvc {
				var rental *models.Rental
				if tt.svcErr == nil {
					rental = &models.Rental{ID: uuid.New()}
				}
				mockSvc.EXPECT().Create(gomock.Any(), customerID, movieID).Return(rental, tt.svcErr)
			}

			rr := httptest.NewRecorder()
			NewCreateRentalHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/rentals", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
			}
		})
	}
}

func TestReturnHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID, movieID := uuid.New(), uuid.New()
	body := `{"customerId":"` + customerID.String() + `","movieId":"` + movieID.String() + `"}`
	fee := 14.0

	tests := []struct {
		name         string
		rental       *models.Rental
		svcErr       error
		expectedCode int
	}{
		{name: "success", rental: &models.Rental{ID: uuid.New(), RentalFee: &fee}, expectedCode: http.StatusOK},
		{name: "no rental", svcErr: services.ErrRentalNotFound, expectedCode: http.StatusNotFound},
		{name: "already returned", svcErr: services.ErrRentalAlreadyReturned, expectedCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReturner(ctrl)
			mockSvc.EXPECT().Return(gomock.Any(), customerID, movieID).Return(tt.rental, tt.svcErr)

			rr := httptest.NewRecorder()
			NewReturnHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/api/returns", body, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.rental != nil {
				assert.Contains(t, rr.Body.String(), `"rentalFee":14`)
			}
		})
	}
}

func TestRentalReadHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	lister := NewMockRentalLister(ctrl)
	lister.EXPECT().List(gomock.Any(), "").Return([]models.Rental{{ID: id}}, nil)
	rr := httptest.NewRecorder()
	NewListRentalsHandler(lister).ServeHTTP(rr, newRequest(http.MethodGet, "/api/rentals", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "dateReturned")

	getter := NewMockRentalGetter(ctrl)
	getter.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrRentalNotFound)
	rr = httptest.NewRecorder()
	NewGetRentalHandler(getter).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", id.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, rentalNotFound, decodeError(t, rr))
}
