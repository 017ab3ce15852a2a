package middleware

import (
	"net/http"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the signed identity token carried in the configured
// header and attaches {user id, role} to the request context.
func Authenticate(cfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(cfg.Header)
			if token == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			claims, err := utils.ParseToken(cfg, token)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseBadRequest(w, "Invalid Token", nil)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates the request on the role extracted by Authenticate.
// The allowed set is declared by the route, not here.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !allowed[entity.UserRole(role)] {
				logger.Warn("Role check failed",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "You don't have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
