package services

//go:generate mockgen -source=customer.go -destination=customer_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
)

// CustomerReader defines read-only operations for customers.
type CustomerReader interface {
	List(ctx context.Context, sort string) ([]models.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// CustomerWriter defines write operations for customers.
type CustomerWriter interface {
	Save(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// CustomerService handles customer CRUD.
type CustomerService struct {
	reader CustomerReader
	writer CustomerWriter
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(reader CustomerReader, writer CustomerWriter) *CustomerService {
	return &CustomerService{reader: reader, writer: writer}
}

func (svc *CustomerService) List(ctx context.Context, sort string) ([]models.Customer, error) {
	customers, err := svc.reader.List(ctx, sort)
	if err != nil {
		logger.Log.Errorw("failed to list customers", "sort", sort, "err", err)
		return nil, err
	}
	return customers, nil
}

func (svc *CustomerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get customer", "id", id, "err", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (svc *CustomerService) Create(ctx context.Context, name, phone string, isGold bool) (*models.Customer, error) {
	customer, err := svc.writer.Save(ctx, &models.Customer{Name: name, Phone: phone, IsGold: isGold})
	if err != nil {
		logger.Log.Errorw("failed to save customer", "name", name, "err", err)
		return nil, err
	}
	return customer, nil
}

func (svc *CustomerService) Update(ctx context.Context, id uuid.UUID, name, phone string, isGold bool) (*models.Customer, error) {
	customer, err := svc.writer.Update(ctx, &models.Customer{ID: id, Name: name, Phone: phone, IsGold: isGold})
	if err != nil {
		logger.Log.Errorw("failed to update customer", "id", id, "err", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (svc *CustomerService) Delete(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete customer", "id", id, "err", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}
