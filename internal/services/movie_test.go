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
	"github.com/stretchr/testify/require"
)

func TestMovieService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMovieReader(ctrl)
	mockWriter := services.NewMockMovieWriter(ctrl)
	mockGenres := services.NewMockGenreReader(ctrl)
	mockCache := services.NewMockGenreCache(ctrl)

	svc := services.NewMovieService(mockReader, mockWriter, mockGenres, mockCache)

	genre := &models.Genre{ID: uuid.New(), Name: "Action"}
	in := services.MovieInput{Title: "Terminator", GenreID: genre.ID, NumberInStock: 3, DailyRentalRate: 2}
	want := &models.Movie{
		Title:           "Terminator",
		Genre:           models.GenreSnapshot{ID: genre.ID, Name: "Action"},
		NumberInStock:   3,
		DailyRentalRate: 2,
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "cache hit",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), genre.ID).Return(genre, nil)
				mockWriter.EXPECT().Save(gomock.Any(), want).Return(want, nil)
			},
		},
		{
			name: "cache miss fills cache",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), genre.ID).Return(nil, nil)
				mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(genre, nil)
				mockCache.EXPECT().Set(gomock.Any(), genre).Return(nil)
				mockWriter.EXPECT().Save(gomock.Any(), want).Return(want, nil)
			},
		},
		{
			name: "cache error falls back to database",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), genre.ID).Return(nil, errors.New("redis down"))
				mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(genre, nil)
				mockCache.EXPECT().Set(gomock.Any(), genre).Return(errors.New("redis down"))
				mockWriter.EXPECT().Save(gomock.Any(), want).Return(want, nil)
			},
		},
		{
			name: "unknown genre",
			setup: func() {
				mockCache.EXPECT().Get(gomock.Any(), genre.ID).Return(nil, nil)
				mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(nil, nil)
			},
			wantErr: services.ErrInvalidGenre,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			got, err := svc.Create(context.Background(), in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMovieService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMovieWriter(ctrl)
	mockGenres := services.NewMockGenreReader(ctrl)

	svc := services.NewMovieService(services.NewMockMovieReader(ctrl), mockWriter, mockGenres, nil)

	id := uuid.New()
	genre := &models.Genre{ID: uuid.New(), Name: "Drama"}
	in := services.MovieInput{Title: "Casablanca", GenreID: genre.ID, NumberInStock: 1, DailyRentalRate: 1.5}
	movie := &models.Movie{
		ID:              id,
		Title:           "Casablanca",
		Genre:           models.GenreSnapshot{ID: genre.ID, Name: "Drama"},
		NumberInStock:   1,
		DailyRentalRate: 1.5,
	}

	t.Run("updated", func(t *testing.T) {
		mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(genre, nil)
		mockWriter.EXPECT().Update(gomock.Any(), movie).Return(movie, nil)

		got, err := svc.Update(context.Background(), id, in)
		assert.NoError(t, err)
		assert.Equal(t, movie, got)
	})

	t.Run("missing movie", func(t *testing.T) {
		mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(genre, nil)
		mockWriter.EXPECT().Update(gomock.Any(), movie).Return(nil, nil)

		got, err := svc.Update(context.Background(), id, in)
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
		assert.Nil(t, got)
	})

	t.Run("genre lookup fails", func(t *testing.T) {
		mockGenres.EXPECT().GetByID(gomock.Any(), genre.ID).Return(nil, errors.New("db error"))

		got, err := svc.Update(context.Background(), id, in)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, got)
	})
}

func TestMovieService_GetDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMovieReader(ctrl)
	mockWriter := services.NewMockMovieWriter(ctrl)
	svc := services.NewMovieService(mockReader, mockWriter, services.NewMockGenreReader(ctrl), nil)

	id := uuid.New()
	movie := &models.Movie{ID: id, Title: "Terminator"}

	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(movie, nil)
	got, err := svc.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, movie, got)

	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	_, err = svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, services.ErrMovieNotFound)

	mockWriter.EXPECT().Delete(gomock.Any(), id).Return(movie, nil)
	got, err = svc.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, movie, got)

	mockWriter.EXPECT().Delete(gomock.Any(), id).Return(nil, nil)
	_, err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, services.ErrMovieNotFound)

	mockReader.EXPECT().List(gomock.Any(), "title").Return([]models.Movie{*movie}, nil)
	list, err := svc.List(context.Background(), "title")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
