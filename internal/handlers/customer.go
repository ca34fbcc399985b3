package handlers

//go:generate mockgen -source=customer.go -destination=customer_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
)

const customerNotFound = "The customer with the given ID was not found."

// CustomerLister lists customers.
type CustomerLister interface {
	List(ctx context.Context, sort string) ([]models.Customer, error)
}

// CustomerGetter fetches one customer.
type CustomerGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// CustomerCreator creates customers.
type CustomerCreator interface {
	Create(ctx context.Context, name, phone string, isGold bool) (*models.Customer, error)
}

// CustomerUpdater updates customers.
type CustomerUpdater interface {
	Update(ctx context.Context, id uuid.UUID, name, phone string, isGold bool) (*models.Customer, error)
}

// CustomerDeleter deletes customers.
type CustomerDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// NewListCustomersHandler returns an HTTP handler listing all customers.
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort key: name, phone, isGold; prefix with - for descending"
// @Success 200 {array} models.Customer
// @Failure 401 {object} models.ErrorResponse
// @Router /customers [get]
func NewListCustomersHandler(svc CustomerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := svc.List(r.Context(), sortParam(r))
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, customers)
	}
}

// NewGetCustomerHandler returns an HTTP handler fetching one customer.
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [get]
func NewGetCustomerHandler(svc CustomerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, customerNotFound)
		if !ok {
			return
		}

		customer, err := svc.Get(r.Context(), id)
		if err != nil {
			writeCustomerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, customer)
	}
}

// NewCreateCustomerHandler returns an HTTP handler creating a customer.
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customer body models.CustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /customers [post]
func NewCreateCustomerHandler(svc CustomerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CustomerRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		customer, err := svc.Create(r.Context(), req.Name, req.Phone, req.IsGold)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, customer)
	}
}

// NewUpdateCustomerHandler returns an HTTP handler updating a customer.
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param customer body models.CustomerRequest true "Customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [put]
func NewUpdateCustomerHandler(svc CustomerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, customerNotFound)
		if !ok {
			return
		}

		var req models.CustomerRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		customer, err := svc.Update(r.Context(), id, req.Name, req.Phone, req.IsGold)
		if err != nil {
			writeCustomerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, customer)
	}
}

// NewDeleteCustomerHandler returns an HTTP handler deleting a customer.
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [delete]
func NewDeleteCustomerHandler(svc CustomerDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, customerNotFound)
		if !ok {
			return
		}

		customer, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeCustomerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, customer)
	}
}

func writeCustomerError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrCustomerNotFound) {
		writeError(w, http.StatusNotFound, customerNotFound)
		return
	}
	writeInternalError(w, r, err)
}
