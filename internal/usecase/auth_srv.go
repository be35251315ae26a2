package usecase

import (
	"context"
	"fmt"
	"time"

	"fraud-portal/internal/data/entity"
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/dto/response"
	"fraud-portal/internal/guard"
	"fraud-portal/internal/notify"
	"fraud-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const deliveryTimeout = 10 * time.Second

// AuthService is the verification state machine shared by the citizen and
// officer login paths: Unverified -> PendingVerification -> Verified, with the
// login sub-cycle reusing PendingVerification semantics on a verified record.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error)
	VerifyRegistration(ctx context.Context, req *request.VerifyOTPRequest, callerKey string) error
	Login(ctx context.Context, req *request.LoginRequest, callerKey string) error
	VerifyLogin(ctx context.Context, req *request.LoginVerifyRequest, callerKey string) (*response.SessionResponse, error)
	OfficerLogin(ctx context.Context, req *request.LoginRequest, callerKey string) (*response.OfficerSessionResponse, error)
}

type authService struct {
	identities repository.IdentityRepository
	guard      guard.Guard
	sender     notify.CodeSender
	config     *utils.Config
	log        *zap.Logger
}

func NewAuthService(
	identities repository.IdentityRepository,
	g guard.Guard,
	sender notify.CodeSender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		identities: identities,
		guard:      g,
		sender:     sender,
		config:     config,
		log:        log,
	}
}

// Register persists an Unverified identity, stores a fresh code and dispatches
// it. Delivery is best-effort: the pending state is already committed, so a
// send failure only surfaces as a warning in the response.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, callerKey string) (*response.RegisterResponse, error) {
	if err := s.guard.Allow(ctx, callerKey, "register"); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role := entity.RoleUser
	if req.Role != "" {
		role = entity.Role(req.Role)
	}

	existing, err := s.identities.FindConflicting(ctx, req.NationalID, req.Email, req.Phone)
	if err != nil {
		s.log.Error("Failed to check identity uniqueness", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check identity uniqueness: %w", err)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	now := time.Now()
	ident := &entity.Identity{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Role:       role,
		Verified:   false,
	}

	if err := s.identities.Create(ctx, ident); err != nil {
		if err == repository.ErrDuplicateIdentity {
			return nil, ErrConflict
		}
		s.log.Error("Failed to create identity", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create identity: %w", err)
	}

	code, err := s.issueCode(ctx, ident.ID)
	if err != nil {
		return nil, err
	}

	resp := &response.RegisterResponse{IdentityID: ident.ID.String()}
	if !s.dispatchCode(ctx, ident.ID, ident.Phone, code) {
		resp.Warning = "verification code could not be delivered"
	}

	s.log.Info("Identity registered",
		zap.String("identity_id", ident.ID.String()),
		zap.String("role", string(role)),
	)

	return resp, nil
}

// VerifyRegistration checks the candidate code and sets the secret in one
// compare-and-set. A wrong id and a wrong or expired code are deliberately
// indistinguishable to the caller.
func (s *authService) VerifyRegistration(ctx context.Context, req *request.VerifyOTPRequest, callerKey string) error {
	if err := s.guard.Allow(ctx, callerKey, "verify-otp"); err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify registration validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	identityID, err := uuid.Parse(req.IdentityID)
	if err != nil {
		return fmt.Errorf("%w: identity_id must be a valid UUID", ErrValidation)
	}

	secretHash, err := utils.HashSecret(req.Secret)
	if err != nil {
		s.log.Error("Failed to hash secret", zap.Error(err))
		return fmt.Errorf("hash secret: %w", err)
	}

	ok, err := s.identities.SetSecretAndVerify(ctx, identityID, req.Code, secretHash)
	if err != nil {
		s.log.Error("Failed to verify registration", zap.Error(err), zap.String("identity_id", req.IdentityID))
		return fmt.Errorf("verify registration: %w", err)
	}
	if !ok {
		return ErrInvalidOrExpiredCode
	}

	s.log.Info("Identity verified", zap.String("identity_id", req.IdentityID))
	return nil
}

// Login is phase one of re-authentication: secret check, then a fresh code is
// stored and dispatched. No token is issued yet.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest, callerKey string) error {
	if err := s.guard.Allow(ctx, callerKey, "login"); err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	ident, err := s.authenticate(ctx, req.IdentityID, req.Secret)
	if err != nil {
		return err
	}

	code, err := s.issueCode(ctx, ident.ID)
	if err != nil {
		return err
	}

	// The code is stored either way; the caller is told it was sent and a
	// fresh login re-issues one.
	s.dispatchCode(ctx, ident.ID, ident.Phone, code)

	s.log.Info("Login code issued", zap.String("identity_id", ident.ID.String()))
	return nil
}

// VerifyLogin is phase two: consume the code, then mint the session token.
// Of two racing attempts exactly one consumes the code; the other observes
// ErrInvalidOrExpiredCode because the fields are already cleared.
func (s *authService) VerifyLogin(ctx context.Context, req *request.LoginVerifyRequest, callerKey string) (*response.SessionResponse, error) {
	if err := s.guard.Allow(ctx, callerKey, "login-verify"); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login verify validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	identityID, err := uuid.Parse(req.IdentityID)
	if err != nil {
		return nil, fmt.Errorf("%w: identity_id must be a valid UUID", ErrValidation)
	}

	ident, err := s.identities.ConsumeCode(ctx, identityID, req.Code)
	if err != nil {
		s.log.Error("Failed to consume login code", zap.Error(err), zap.String("identity_id", req.IdentityID))
		return nil, fmt.Errorf("verify login: %w", err)
	}
	if ident == nil {
		return nil, ErrInvalidOrExpiredCode
	}

	token, expiresAt, err := s.issueToken(ident)
	if err != nil {
		return nil, err
	}

	s.log.Info("Session issued",
		zap.String("identity_id", ident.ID.String()),
		zap.String("role", string(ident.Role)),
	)

	return &response.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   response.IdentityToProfile(ident),
	}, nil
}

// OfficerLogin issues a session directly from a secret check for verified
// officer identities. Non-officer and unknown ids fail with the same error as
// a wrong secret.
func (s *authService) OfficerLogin(ctx context.Context, req *request.LoginRequest, callerKey string) (*response.OfficerSessionResponse, error) {
	if err := s.guard.Allow(ctx, callerKey, "officer-login"); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Officer login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	ident, err := s.authenticate(ctx, req.IdentityID, req.Secret)
	if err != nil {
		return nil, err
	}
	if ident.Role != entity.RoleOfficer {
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.issueToken(ident)
	if err != nil {
		return nil, err
	}

	s.log.Info("Officer session issued", zap.String("identity_id", ident.ID.String()))

	return &response.OfficerSessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   response.IdentityToOfficerProfile(ident),
	}, nil
}

// ==================== HELPER METHODS ====================

// authenticate resolves a verified identity and checks its secret. Unknown
// id, unverified identity and wrong secret all return ErrUnauthorized.
func (s *authService) authenticate(ctx context.Context, rawID, secret string) (*entity.Identity, error) {
	identityID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: identity_id must be a valid UUID", ErrValidation)
	}

	ident, err := s.identities.FindVerifiedByID(ctx, identityID)
	if err != nil {
		s.log.Error("Failed to look up identity", zap.Error(err), zap.String("identity_id", rawID))
		return nil, fmt.Errorf("find identity: %w", err)
	}
	if ident == nil || ident.SecretHash == nil {
		return nil, ErrUnauthorized
	}

	if !utils.CheckSecret(secret, *ident.SecretHash) {
		s.log.Warn("Secret mismatch", zap.String("identity_id", rawID))
		return nil, ErrUnauthorized
	}

	return ident, nil
}

// issueCode generates a fresh code and stores it, overwriting any prior one
// so at most one code is ever active per identity.
func (s *authService) issueCode(ctx context.Context, identityID uuid.UUID) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate code", zap.Error(err))
		return "", fmt.Errorf("generate code: %w", err)
	}

	expiresAt := utils.OTPExpiry(time.Now(), s.config.OTP.ExpiryMinutes)
	if err := s.identities.SetCode(ctx, identityID, code, expiresAt); err != nil {
		s.log.Error("Failed to store code", zap.Error(err), zap.String("identity_id", identityID.String()))
		return "", fmt.Errorf("store code: %w", err)
	}

	return code, nil
}

// dispatchCode delivers a stored code under a bounded timeout. Delivery is
// best-effort: the stored state is never rolled back on failure.
func (s *authService) dispatchCode(ctx context.Context, identityID uuid.UUID, phone, code string) bool {
	sendCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := s.sender.Send(sendCtx, phone, code); err != nil {
		s.log.Warn("Code delivery failed",
			zap.Error(err),
			zap.String("identity_id", identityID.String()),
		)
		return false
	}

	return true
}

func (s *authService) issueToken(ident *entity.Identity) (string, time.Time, error) {
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	expiresAt := time.Now().Add(ttl)

	token, err := utils.SignSessionToken(ident.ID, string(ident.Role), s.config.JWT.Secret, ttl)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("identity_id", ident.ID.String()))
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, expiresAt, nil
}
