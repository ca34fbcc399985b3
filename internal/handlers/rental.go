package handlers

//go:generate mockgen -source=rental.go -destination=rental_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
)

const rentalNotFound = "The rental with the given ID was not found."

// RentalLister lists rentals.
type RentalLister interface {
	List(ctx context.Context, sort string) ([]models.Rental, error)
}

// RentalGetter fetches one rental.
type RentalGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Rental, error)
}

// RentalCreator rents a movie to a customer.
type RentalCreator interface {
	Create(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error)
}

// Returner processes the return of a rented movie.
type Returner interface {
	Return(ctx context.Context, customerID, movieID uuid.UUID) (*models.Rental, error)
}

// NewListRentalsHandler returns an HTTP handler listing all rentals.
// @Summary List rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort key: dateOut, dateReturned, customer, movie; prefix with - for descending"
// @Success 200 {array} models.Rental
// @Failure 401 {object} models.ErrorResponse
// @Router /rentals [get]
func NewListRentalsHandler(svc RentalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rentals, err := svc.List(r.Context(), sortParam(r))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rentals)
	}
}

// NewGetRentalHandler returns an HTTP handler fetching one rental.
// @Summary Get a rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} models.Rental
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /rentals/{id} [get]
func NewGetRentalHandler(svc RentalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, rentalNotFound)
		if !ok {
			return
		}

		rental, err := svc.Get(r.Context(), id)
		if err != nil {
			writeRentalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rental)
	}
}

// NewCreateRentalHandler returns an HTTP handler renting a movie.
// @Summary Rent a movie
// @Description Takes one copy of the movie out of stock and records the customer and movie at rental time.
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rental body models.RentalRequest true "Customer and movie"
// @Success 201 {object} models.Rental
// @Failure 400 {object} models.ErrorResponse "Validation failed, unknown customer or unknown movie"
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Movie not in stock"
// @Router /rentals [post]
func NewCreateRentalHandler(svc RentalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RentalRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		rental, err := svc.Create(r.Context(), uuid.MustParse(req.CustomerID), uuid.MustParse(req.MovieID))
		if err != nil {
			writeRentalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, rental)
	}
}

// NewReturnHandler returns an HTTP handler processing a return.
// @Summary Return a movie
// @Description Closes the customer's rental of the movie, charges the rental fee and puts the copy back in stock.
// @Tags returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param return body models.RentalRequest true "Customer and movie"
// @Success 200 {object} models.Rental
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "No rental for this customer and movie"
// @Failure 409 {object} models.ErrorResponse "Return already processed"
// @Router /returns [post]
func NewReturnHandler(svc Returner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RentalRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		rental, err := svc.Return(r.Context(), uuid.MustParse(req.CustomerID), uuid.MustParse(req.MovieID))
		if err != nil {
			writeRentalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rental)
	}
}

func writeRentalError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrRentalNotFound):
		writeError(w, http.StatusNotFound, rentalNotFound)
	case errors.Is(err, services.ErrInvalidCustomer):
		writeError(w, http.StatusBadRequest, "Invalid customer.")
	case errors.Is(err, services.ErrInvalidMovie):
		writeError(w, http.StatusBadRequest, "Invalid movie.")
	case errors.Is(err, services.ErrMovieOutOfStock):
		writeError(w, http.StatusConflict, "Movie not in stock.")
	case errors.Is(err, services.ErrRentalAlreadyReturned):
		writeError(w, http.StatusConflict, "Return already processed.")
	default:
		writeInternalError(w, r, err)
	}
}
