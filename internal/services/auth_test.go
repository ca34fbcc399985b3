package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/repositories"
	"github.com/sbilibin2017/vidly/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	userID := uuid.New()

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		wantErr      error
	}{
		{
			name:  "successful registration",
			email: "alice@example.com",
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "duplicate on insert",
			email:     "carol@example.com",
			writerErr: repositories.ErrDuplicate,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:    "jwt error",
			email:   "dave@example.com",
			jwtErr:  errors.New("sign error"),
			wantErr: errors.New("sign error"),
		},
		{
			name:     "password over 72 bytes",
			email:    "frank@example.com",
			password: strings.Repeat("é", 40),
			wantErr:  services.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password := tt.password
			if password == "" {
				password = "pass123"
			}

			if len(password) <= 72 {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.existingUser, tt.readerErr)
			}

			if len(password) <= 72 && tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.Equal(t, tt.email, u.Email)
						assert.False(t, u.IsAdmin)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
						saved := *u
						saved.UserID = userID
						return &saved, nil
					})

				if tt.writerErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), userID, false).
						Return("token123", tt.jwtErr)
				}
			}

			user, token, err := svc.Register(context.Background(), "Alice Smith", tt.email, password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.UserID)
			assert.Equal(t, "token123", token)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	admin := &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed), IsAdmin: true}

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		loginPass string
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			user:      admin,
			loginPass: password,
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "wrong password",
			user:      admin,
			loginPass: "wrong",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			user:      admin,
			loginPass: password,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "alice@example.com").
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID, true).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), "alice@example.com", tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	id := uuid.New()
	user := &models.UserDB{UserID: id, Name: "Alice Smith"}

	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(user, nil)
	got, err := svc.Me(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	_, err = svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(r *services.MockUserReader, w *services.MockUserWriter)
		wantErr  error
	}{
		{
			name:  "disabled without email",
			setup: func(*services.MockUserReader, *services.MockUserWriter) {},
		},
		{
			name:  "creates admin",
			email: "admin@example.com",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (*models.UserDB, error) {
						assert.True(t, u.IsAdmin)
						return u, nil
					})
			},
		},
		{
			name:  "admin already present",
			email: "admin@example.com",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
		},
		{
			name:  "save fails",
			email: "admin@example.com",
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
				w.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "admin password too long",
			email:    "admin@example.com",
			password: strings.Repeat("a", 73),
			setup:    func(*services.MockUserReader, *services.MockUserWriter) {},
			wantErr:  services.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := services.NewMockUserReader(ctrl)
			w := services.NewMockUserWriter(ctrl)
			tt.setup(r, w)

			password := tt.password
			if password == "" {
				password = "secret"
			}

			svc := services.NewAuthService(r, w, services.NewMockJWTGenerator(ctrl))
			err := svc.EnsureAdmin(context.Background(), "administrator", tt.email, password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
