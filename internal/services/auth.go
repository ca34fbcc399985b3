package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/vidly/internal/logger"
	"github.com/sbilibin2017/vidly/internal/models"
	"github.com/sbilibin2017/vidly/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a regular user and returns it with a fresh token.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.UserDB, string, error) {
	user, err := svc.create(ctx, name, email, password, false)
	if err != nil {
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Me returns the profile of the authenticated user.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap administrator unless a user with that
// email already exists. An empty email disables the bootstrap.
func (svc *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := svc.create(ctx, name, email, password, true)
	if errors.Is(err, ErrUserAlreadyExists) {
		logger.Log.Infow("admin user already exists", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Log.Infow("admin user created", "email", email)
	return nil
}

func (svc *AuthService) create(ctx context.Context, name, email, password string, isAdmin bool) (*models.UserDB, error) {
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, &models.UserDB{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      isAdmin,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}
