package wire

import (
	"fraud-portal/internal/adaptor"
	"fraud-portal/internal/data/repository"
	"fraud-portal/pkg/middleware"
	"fraud-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== CITIZEN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		r.Post("/api/reports", reportHandler.FileReport)
		r.Post("/api/suspects", reportHandler.FlagSuspect)
	})

	// ==================== OFFICER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))
		r.Use(middleware.Officer(repo.Identity, log))

		r.Post("/api/officer/data-requests", reportHandler.CreateDataRequest)
	})
}
