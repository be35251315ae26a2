package wire

import (
	"net/http"

	"fraud-portal/internal/adaptor"
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/guard"
	"fraud-portal/internal/notify"
	"fraud-portal/internal/usecase"
	"fraud-portal/pkg/database"
	"fraud-portal/pkg/middleware"
	"fraud-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring connects repositories, services and handlers. Every collaborator is
// constructed here and passed by reference; nothing is package-global.
func Wiring(
	db database.PgxIface,
	repo *repository.Repository,
	g guard.Guard,
	sender notify.CodeSender,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, g, sender, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(db, handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	db database.PgxIface,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, logger)
	wireProfile(r, handler.Profile, config, logger)
	wireReport(r, handler.Report, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.Error("Health check: database unreachable", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
