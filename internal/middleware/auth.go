package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskmasterhq/taskmaster/internal/apperr"
	"github.com/taskmasterhq/taskmaster/internal/auth"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/models"
	"github.com/taskmasterhq/taskmaster/internal/storage"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the resolved user attached to the request context once the
// bearer token has been verified. Handlers read it instead of touching the
// Authorization header themselves.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	users      storage.UserStore
	log        *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, users storage.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		users:      users,
		log:        logger.New("auth-middleware"),
	}
}

// RequireAuth verifies the bearer token and resolves it to a live user
// before the handler runs. Missing, invalid and expired tokens are all
// rejected with the same unauthenticated response.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "authorization header required")
			return
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.log.Debug("rejected token: %v", err)
			unauthorized(w, "invalid or expired token")
			return
		}

		// Token claims alone are not enough: the identity must resolve to
		// a live user record.
		u, err := m.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			m.log.Error("failed to resolve user %s: %v", claims.UserID, err)
			unauthorized(w, "invalid or expired token")
			return
		}
		if u == nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		identity := Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// GetIdentity returns the identity attached by RequireAuth, if any.
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   string(apperr.KindUnauthenticated),
		Message: message,
	})
}
