package request

type RegisterRequest struct {
	FullName   string `json:"full_name" validate:"required,min=3,max=100"`
	NationalID string `json:"national_id" validate:"required,len=12,numeric"`
	Phone      string `json:"phone" validate:"required,min=10,max=15"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required,min=5"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof=USER OFFICER"`
}

type VerifyOTPRequest struct {
	IdentityID string `json:"identity_id" validate:"required,uuid"`
	Code       string `json:"code" validate:"required,len=6"`
	Secret     string `json:"secret" validate:"required,min=8"`
}

type LoginRequest struct {
	IdentityID string `json:"identity_id" validate:"required,uuid"`
	Secret     string `json:"secret" validate:"required"`
}

type LoginVerifyRequest struct {
	IdentityID string `json:"identity_id" validate:"required,uuid"`
	Code       string `json:"code" validate:"required,len=6"`
}

type UpdateProfileRequest struct {
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,min=5"`
}
