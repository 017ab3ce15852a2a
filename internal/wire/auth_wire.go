package wire

import (
	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/signin", authHandler.Signin)
	r.Post("/api/auth/verify", authHandler.VerifyEmail)

	// ==================== ADMIN ROUTES ====================
	// Employee intake is restricted to super admins
	r.Route("/api/auth/signup/employee", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin))

		r.Post("/", authHandler.RegisterEmployee)
	})
}
