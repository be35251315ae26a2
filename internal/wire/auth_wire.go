package wire

import (
	"fraud-portal/internal/adaptor"
	"fraud-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// The verification endpoints are public by construction: the state
	// machine itself gates every transition.
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/login-verify", authHandler.LoginVerify)
	r.Post("/api/officer/login", authHandler.OfficerLogin)
}
