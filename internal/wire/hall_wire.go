package wire

import (
	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Hall listing requires a valid token but no particular role
	r.Route("/api/halls", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		r.Get("/all", hallHandler.GetHalls)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin, entity.RoleHallManager))

			r.Post("/add", hallHandler.CreateHall)
			r.Put("/edit/{id}", hallHandler.UpdateHall)
			r.Delete("/delete/{id}", hallHandler.DeleteHall)
			r.Put("/restore/{id}", hallHandler.RestoreHall)
		})
	})
}
