package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HeaderAuthToken is the legacy header carrying a raw token.
const HeaderAuthToken = "x-auth-token"

var (
	ErrMissingToken = errors.New("authorization token missing")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID  uuid.UUID `json:"-"`
	IsAdmin bool      `json:"-"`
}

type tokenClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.secretKey = key }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT with a one hour lifetime unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for the given user.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:  userID.String(),
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims verifies the token and returns its identity.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	parsed := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(parsed.UserID)
	if err != nil {
		return nil, errors.New("invalid user_id format")
	}

	return &Claims{UserID: userID, IsAdmin: parsed.IsAdmin}, nil
}

// Validate reports whether the token is well-formed, signed and unexpired.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest reads a bearer token from Authorization, falling back to x-auth-token.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", errors.New("invalid authorization header format")
		}
		return parts[1], nil
	}

	if token := strings.TrimSpace(r.Header.Get(HeaderAuthToken)); token != "" {
		return token, nil
	}

	return "", ErrMissingToken
}

type claimsKey struct{}

// WithClaims stores verified claims in the context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey{}).(*Claims)
	return claims
}
