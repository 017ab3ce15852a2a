package wire

import (
	"cinema-manager/internal/adaptor"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/mailer"
	"cinema-manager/pkg/middleware"
	"cinema-manager/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the composed dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.New(config.Email, logger)

	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireAdmin(r, handler.Admin, config, logger)
	wireMovie(r, handler.Movie, config, logger)
	wireHall(r, handler.Hall, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
