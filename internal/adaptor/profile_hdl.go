package adaptor

import (
	"net/http"

	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/usecase"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// Me handles GET /api/me
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	identityID, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.GetProfile(r.Context(), identityID)
	if err != nil {
		writeServiceError(w, h.log, err, "load profile")
		return
	}

	utils.ResponseSuccess(w, "Profile", resp)
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identityID, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateProfile(r.Context(), identityID, &req); err != nil {
		writeServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", nil)
}
