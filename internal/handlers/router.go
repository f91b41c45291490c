package handlers

import (
	"net/http"

	"github.com/taskmasterhq/taskmaster/internal/middleware"
)

// NewRouter assembles the HTTP surface. Every task and profile route goes
// through RequireAuth before its handler; the credential endpoints go
// through the rate limiter when one is configured.
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	userHandler *UserHandler,
	authMW *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) *http.ServeMux {
	limited := func(next http.HandlerFunc) http.HandlerFunc {
		if limiter == nil {
			return next
		}
		return limiter.Middleware(next)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/auth/register", limited(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", limited(authHandler.Login))

	mux.HandleFunc("GET /api/tasks", authMW.RequireAuth(taskHandler.List))
	mux.HandleFunc("POST /api/tasks", authMW.RequireAuth(taskHandler.Create))
	mux.HandleFunc("GET /api/tasks/{id}", authMW.RequireAuth(taskHandler.Get))
	mux.HandleFunc("PUT /api/tasks/{id}", authMW.RequireAuth(taskHandler.Update))
	mux.HandleFunc("DELETE /api/tasks/{id}", authMW.RequireAuth(taskHandler.Delete))

	mux.HandleFunc("GET /api/user/profile", authMW.RequireAuth(userHandler.GetProfile))
	mux.HandleFunc("PUT /api/user/profile", authMW.RequireAuth(userHandler.UpdateProfile))
	mux.HandleFunc("PUT /api/user/password", authMW.RequireAuth(userHandler.ChangePassword))

	return mux
}
