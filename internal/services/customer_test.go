package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCustomerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCustomerReader(ctrl)
	mockWriter := services.NewMockCustomerWriter(ctrl)
	svc := services.NewCustomerService(mockReader, mockWriter)

	ctx := context.Background()
	id := uuid.New()
	customer := &models.Customer{ID: id, Name: "John Smith", Phone: "998289230", IsGold: true}

	t.Run("Create", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), &models.Customer{Name: "John Smith", Phone: "998289230", IsGold: true}).
			Return(customer, nil)

		got, err := svc.Create(ctx, "John Smith", "998289230", true)
		assert.NoError(t, err)
		assert.Equal(t, customer, got)
	})

	t.Run("Create error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.Create(ctx, "John Smith", "998289230", false)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("Get", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), id).Return(customer, nil)

		got, err := svc.Get(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, customer, got)
	})

	t.Run("Get missing", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		mockWriter.EXPECT().Update(gomock.Any(), customer).Return(customer, nil)

		got, err := svc.Update(ctx, id, "John Smith", "998289230", true)
		assert.NoError(t, err)
		assert.Equal(t, customer, got)
	})

	t.Run("Update missing", func(t *testing.T) {
		mockWriter.EXPECT().Update(gomock.Any(), customer).Return(nil, nil)

		_, err := svc.Update(ctx, id, "John Smith", "998289230", true)
		assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	})

	t.Run("Delete missing", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, services.ErrCustomerNotFound)
	})

	t.Run("List", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any(), "").Return([]models.Customer{*customer}, nil)

		got, err := svc.List(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, []models.Customer{*customer}, got)
	})
}
