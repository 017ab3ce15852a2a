package wire

import (
	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/all - the catalog is public read
	r.Get("/api/movies/all", movieHandler.GetMovies)

	// ==================== MANAGER ROUTES ====================
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, entity.RoleSuperAdmin, entity.RoleMoviesManager))

		r.Post("/add", movieHandler.CreateMovie)
		r.Put("/edit/{id}", movieHandler.UpdateMovie)
		r.Delete("/delete/{id}", movieHandler.DeleteMovie)
		r.Put("/restore/{id}", movieHandler.RestoreMovie)
	})
}
