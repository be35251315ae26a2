package adaptor

import (
	"net/http"

	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/usecase"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req, clientKey(r))
	if err != nil {
		writeServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registered. A verification code has been sent.", resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.VerifyRegistration(r.Context(), &req, clientKey(r)); err != nil {
		writeServiceError(w, h.log, err, "verify otp")
		return
	}

	utils.ResponseSuccess(w, "Identity verified", nil)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Login(r.Context(), &req, clientKey(r)); err != nil {
		writeServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", nil)
}

// LoginVerify handles POST /api/auth/login-verify
func (h *AuthHandler) LoginVerify(w http.ResponseWriter, r *http.Request) {
	var req request.LoginVerifyRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.VerifyLogin(r.Context(), &req, clientKey(r))
	if err != nil {
		writeServiceError(w, h.log, err, "login verify")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// OfficerLogin handles POST /api/officer/login
func (h *AuthHandler) OfficerLogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.OfficerLogin(r.Context(), &req, clientKey(r))
	if err != nil {
		writeServiceError(w, h.log, err, "officer login")
		return
	}

	utils.ResponseSuccess(w, "Officer login successful", resp)
}
