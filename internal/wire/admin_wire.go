package wire

import (
	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin))

		r.Put("/assign/employee", adminHandler.AssignRole)
	})
}
