package usecase

import (
	"context"
	"fmt"

	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/dto/request"
	"fraud-portal/internal/dto/response"
	"fraud-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService reads and mutates the contact attributes of an identity.
// Secret and verification fields stay exclusive to the verification flow.
type ProfileService interface {
	GetProfile(ctx context.Context, identityID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, identityID uuid.UUID, req *request.UpdateProfileRequest) error
}

type profileService struct {
	identities repository.IdentityRepository
	log        *zap.Logger
}

func NewProfileService(identities repository.IdentityRepository, log *zap.Logger) ProfileService {
	return &profileService{
		identities: identities,
		log:        log,
	}
}

func (s *profileService) GetProfile(ctx context.Context, identityID uuid.UUID) (*response.ProfileResponse, error) {
	ident, err := s.identities.FindByID(ctx, identityID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("identity_id", identityID.String()))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if ident == nil {
		return nil, ErrNotFound
	}

	resp := response.IdentityToProfile(ident)
	return &resp, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, identityID uuid.UUID, req *request.UpdateProfileRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	err := s.identities.UpdateProfile(ctx, identityID, req.Phone, req.Email, req.Address)
	if err != nil {
		if err == repository.ErrDuplicateIdentity {
			return ErrConflict
		}
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("identity_id", identityID.String()))
		return fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("identity_id", identityID.String()))
	return nil
}
