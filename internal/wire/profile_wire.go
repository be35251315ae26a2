package wire

import (
	"fraud-portal/internal/adaptor"
	"fraud-portal/pkg/middleware"
	"fraud-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		r.Get("/api/me", profileHandler.Me)
		r.Put("/api/profile", profileHandler.Update)
	})
}
