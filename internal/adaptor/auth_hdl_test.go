package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/dto/response"
	"fraud-portal/internal/guard"
	"fraud-portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error)
	VerifyRegistrationFunc func(ctx context.Context, req *request.VerifyOTPRequest, callerKey string) error
	LoginFunc              func(ctx context.Context, req *request.LoginRequest, callerKey string) error
	VerifyLoginFunc        func(ctx context.Context, req *request.LoginVerifyRequest, callerKey string) (*response.SessionResponse, error)
	OfficerLoginFunc       func(ctx context.Context, req *request.LoginRequest, callerKey string) (*response.OfficerSessionResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req, callerKey)
	}
	return &response.RegisterResponse{IdentityID: "00000000-0000-0000-0000-000000000001"}, nil
}

func (m *MockAuthService) VerifyRegistration(ctx context.Context, req *request.VerifyOTPRequest, callerKey string) error {
	if m.VerifyRegistrationFunc != nil {
		return m.VerifyRegistrationFunc(ctx, req, callerKey)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest, callerKey string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req, callerKey)
	}
	return nil
}

func (m *MockAuthService) VerifyLogin(ctx context.Context, req *request.LoginVerifyRequest, callerKey string) (*response.SessionResponse, error) {
	if m.VerifyLoginFunc != nil {
		return m.VerifyLoginFunc(ctx, req, callerKey)
	}
	return &response.SessionResponse{Token: "signed-token"}, nil
}

func (m *MockAuthService) OfficerLogin(ctx context.Context, req *request.LoginRequest, callerKey string) (*response.OfficerSessionResponse, error) {
	if m.OfficerLoginFunc != nil {
		return m.OfficerLoginFunc(ctx, req, callerKey)
	}
	return &response.OfficerSessionResponse{Token: "signed-token"}, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

const registerBody = `{
	"full_name": "Asha Verma",
	"national_id": "123456789012",
	"phone": "+919812345678",
	"email": "asha@example.com",
	"address": "14 MG Road, Pune"
}`

func TestRegisterHandler_Created(t *testing.T) {
	var gotKey string
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
			gotKey = callerKey
			assert.Equal(t, "123456789012", req.NationalID)
			return &response.RegisterResponse{IdentityID: "00000000-0000-0000-0000-000000000001"}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.Register, registerBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "203.0.113.7", gotKey, "guard key is the remote IP without port")
}

func TestRegisterHandler_RejectsUnknownFields(t *testing.T) {
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
			t.Fatal("service must not be called for an unknown-field payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	body := strings.TrimSuffix(registerBody, "\n}") + `,
	"is_admin": true
}`
	rec := postJSON(t, h.Register, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_MalformedJSON(t *testing.T) {
	h := NewAuthHandler(&MockAuthService{}, zap.NewNop())

	rec := postJSON(t, h.Register, `{"full_name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_ValidationBeforeService(t *testing.T) {
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.Register, `{"full_name": "Asha Verma", "national_id": "123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"conflict", usecase.ErrConflict, http.StatusConflict},
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"invalid code", usecase.ErrInvalidOrExpiredCode, http.StatusBadRequest},
		{"throttled", guard.ErrTooManyRequests, http.StatusTooManyRequests},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{
				RegisterFunc: func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
					return nil, tt.err
				},
			}
			h := NewAuthHandler(svc, zap.NewNop())

			rec := postJSON(t, h.Register, registerBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestErrorResponses_NeverLeakInternals(t *testing.T) {
	svc := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
			return nil, assert.AnError
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.Register, registerBody)

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestLoginVerifyHandler_ReturnsSession(t *testing.T) {
	svc := &MockAuthService{
		VerifyLoginFunc: func(ctx context.Context, req *request.LoginVerifyRequest, callerKey string) (*response.SessionResponse, error) {
			assert.Equal(t, "042917", req.Code)
			return &response.SessionResponse{Token: "signed-token"}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.LoginVerify, `{
		"identity_id": "00000000-0000-0000-0000-000000000001",
		"code": "042917"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestVerifyOTPHandler_WrongCode(t *testing.T) {
	svc := &MockAuthService{
		VerifyRegistrationFunc: func(ctx context.Context, req *request.VerifyOTPRequest, callerKey string) error {
			return usecase.ErrInvalidOrExpiredCode
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.VerifyOTP, `{
		"identity_id": "00000000-0000-0000-0000-000000000001",
		"code": "000000",
		"secret": "pw-longenough"
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired code")
}
