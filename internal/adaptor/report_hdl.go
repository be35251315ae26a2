package adaptor

import (
	"net/http"

	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/usecase"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// FileReport handles POST /api/reports
func (h *ReportHandler) FileReport(w http.ResponseWriter, r *http.Request) {
	identityID, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReportRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.FileReport(r.Context(), identityID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "file report")
		return
	}

	utils.ResponseCreated(w, "Report filed", resp)
}

// FlagSuspect handles POST /api/suspects
func (h *ReportHandler) FlagSuspect(w http.ResponseWriter, r *http.Request) {
	identityID, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.FlagSuspectRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.FlagSuspect(r.Context(), identityID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "flag suspect")
		return
	}

	utils.ResponseCreated(w, "Suspect entity flagged", resp)
}

// CreateDataRequest handles POST /api/officer/data-requests
func (h *ReportHandler) CreateDataRequest(w http.ResponseWriter, r *http.Request) {
	identityID, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDataRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateDataRequest(r.Context(), identityID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create data request")
		return
	}

	utils.ResponseCreated(w, "Data request created", resp)
}
