package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGenreService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockGenreReader(ctrl)
	svc := services.NewGenreService(mockReader, services.NewMockGenreWriter(ctrl), nil)

	id := uuid.New()

	tests := []struct {
		name    string
		genre   *models.Genre
		repoErr error
		wantErr error
	}{
		{name: "found", genre: &models.Genre{ID: id, Name: "Action"}},
		{name: "not found", wantErr: services.ErrGenreNotFound},
		{name: "repository error", repoErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByID(gomock.Any(), id).Return(tt.genre, tt.repoErr)

			got, err := svc.Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.genre, got)
		})
	}
}

func TestGenreService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockGenreReader(ctrl)
	svc := services.NewGenreService(mockReader, services.NewMockGenreWriter(ctrl), nil)

	genres := []models.Genre{{ID: uuid.New(), Name: "Action"}, {ID: uuid.New(), Name: "Comedy"}}
	mockReader.EXPECT().List(gomock.Any(), "-name").Return(genres, nil)

	got, err := svc.List(context.Background(), "-name")
	assert.NoError(t, err)
	assert.Equal(t, genres, got)

	mockReader.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db error"))

	got, err = svc.List(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestGenreService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockGenreWriter(ctrl)
	svc := services.NewGenreService(services.NewMockGenreReader(ctrl), mockWriter, nil)

	saved := &models.Genre{ID: uuid.New(), Name: "Comedy"}
	mockWriter.EXPECT().
		Save(gomock.Any(), &models.Genre{Name: "Comedy"}).
		Return(saved, nil)

	got, err := svc.Create(context.Background(), "Comedy")
	assert.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestGenreService_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockGenreWriter(ctrl)
	mockCache := services.NewMockGenreCache(ctrl)
	svc := services.NewGenreService(services.NewMockGenreReader(ctrl), mockWriter, mockCache)

	id := uuid.New()
	genre := &models.Genre{ID: id, Name: "Thriller"}

	tests := []struct {
		name      string
		call      func() (*models.Genre, error)
		setup     func()
		wantGenre *models.Genre
		wantErr   error
	}{
		{
			name: "update evicts cache",
			setup: func() {
				mockWriter.EXPECT().Update(gomock.Any(), genre).Return(genre, nil)
				mockCache.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			call:      func() (*models.Genre, error) { return svc.Update(context.Background(), id, "Thriller") },
			wantGenre: genre,
		},
		{
			name: "update missing genre",
			setup: func() {
				mockWriter.EXPECT().Update(gomock.Any(), genre).Return(nil, nil)
			},
			call:    func() (*models.Genre, error) { return svc.Update(context.Background(), id, "Thriller") },
			wantErr: services.ErrGenreNotFound,
		},
		{
			name: "delete evicts cache even if eviction fails",
			setup: func() {
				mockWriter.EXPECT().Delete(gomock.Any(), id).Return(genre, nil)
				mockCache.EXPECT().Delete(gomock.Any(), id).Return(errors.New("redis down"))
			},
			call:      func() (*models.Genre, error) { return svc.Delete(context.Background(), id) },
			wantGenre: genre,
		},
		{
			name: "delete missing genre",
			setup: func() {
				mockWriter.EXPECT().Delete(gomock.Any(), id).Return(nil, nil)
			},
			call:    func() (*models.Genre, error) { return svc.Delete(context.Background(), id) },
			wantErr: services.ErrGenreNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			got, err := tt.call()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantGenre, got)
		})
	}
}

func TestGenreService_UpdateEvictsAgainAfterDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockGenreWriter(ctrl)
	mockCache := services.NewMockGenreCache(ctrl)
	svc := services.NewGenreService(services.NewMockGenreReader(ctrl), mockWriter, mockCache,
		services.WithEvictDelay(10*time.Millisecond))

	id := uuid.New()
	genre := &models.Genre{ID: id, Name: "Thriller"}

	// A concurrent movie write refills the cache between the two evictions.
	evicted := make(chan struct{}, 2)
	mockWriter.EXPECT().Update(gomock.Any(), genre).Return(genre, nil)
	mockCache.EXPECT().Delete(gomock.Any(), id).Times(2).DoAndReturn(func(context.Context, uuid.UUID) error {
		evicted <- struct{}{}
		return nil
	})

	got, err := svc.Update(context.Background(), id, "Thriller")
	assert.NoError(t, err)
	assert.Equal(t, genre, got)

	for i := 0; i < 2; i++ {
		select {
		case <-evicted:
		case <-time.After(time.Second):
			t.Fatalf("eviction %d did not happen", i+1)
		}
	}
}
