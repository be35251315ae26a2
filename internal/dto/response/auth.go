package response

import (
	"time"

	"fraud-portal/internal/data/entity"
)

type RegisterResponse struct {
	IdentityID string `json:"identity_id"`
	// Warning is set when code delivery failed; the pending verification
	// state is committed either way.
	Warning string `json:"warning,omitempty"`
}

// ProfileResponse is the public projection of an identity. The secret hash
// never leaves the store.
type ProfileResponse struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	NationalID string      `json:"national_id"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Address    string      `json:"address"`
	Role       entity.Role `json:"role"`
	Verified   bool        `json:"verified"`
	CreatedAt  time.Time   `json:"created_at"`
}

type SessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

// OfficerProfileResponse is the limited projection returned on officer login.
type OfficerProfileResponse struct {
	ID       string      `json:"id"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
}

type OfficerSessionResponse struct {
	Token     string                 `json:"token"`
	ExpiresAt time.Time              `json:"expires_at"`
	Profile   OfficerProfileResponse `json:"profile"`
}

func IdentityToProfile(ident *entity.Identity) ProfileResponse {
	return ProfileResponse{
		ID:         ident.ID.String(),
		FullName:   ident.FullName,
		NationalID: ident.NationalID,
		Phone:      ident.Phone,
		Email:      ident.Email,
		Address:    ident.Address,
		Role:       ident.Role,
		Verified:   ident.Verified,
		CreatedAt:  ident.CreatedAt,
	}
}

func IdentityToOfficerProfile(ident *entity.Identity) OfficerProfileResponse {
	return OfficerProfileResponse{
		ID:       ident.ID.String(),
		FullName: ident.FullName,
		Email:    ident.Email,
		Role:     ident.Role,
	}
}
