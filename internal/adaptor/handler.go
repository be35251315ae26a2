package adaptor

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"fraud-portal/internal/guard"
	"fraud-portal/internal/usecase"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Profile: NewProfileHandler(service.Profile, log),
		Report:  NewReportHandler(service.Report, log),
	}
}

// decodeBody decodes a JSON request body, rejecting unknown fields so a
// malformed payload fails before it reaches the state machine.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// clientKey is the caller key handed to the rate guard: the remote IP without
// the ephemeral port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeServiceError maps domain sentinels to the HTTP taxonomy. Anything
// unrecognized is an internal error: logged with context, never exposed.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - duplicate identity", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidOrExpiredCode):
		log.Warn(operation + " failed - invalid or expired code")
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation + " failed - not found")
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, guard.ErrTooManyRequests):
		log.Warn(operation + " throttled")
		utils.ResponseTooManyRequests(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
