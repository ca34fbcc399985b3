package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/vidly/internal/jwt"
	"github.com/sbilibin2017/vidly/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a valid token and stores the
// token's claims in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Invalid token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

// AdminMiddleware lets through only identities carrying the admin claim.
// It must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := jwt.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}
		if !claims.IsAdmin {
			logger.Log.Warnw("admin route denied", "user_id", claims.UserID, "uri", r.RequestURI)
			writeError(w, http.StatusForbidden, "Access denied.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
