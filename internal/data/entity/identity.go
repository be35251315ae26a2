package entity

import "time"

type Role string

const (
	RoleUser    Role = "USER"
	RoleOfficer Role = "OFFICER"
)

// Identity is a registered citizen or officer. The one-time-code fields live
// on the record itself: at most one active code exists per identity and a new
// code simply overwrites the old one.
type Identity struct {
	BaseNoDelete
	FullName   string  `db:"full_name"`
	NationalID string  `db:"national_id"`
	Phone      string  `db:"phone"`
	Email      string  `db:"email"`
	Address    string  `db:"address"`
	Role       Role    `db:"role"`
	SecretHash *string `db:"secret_hash"`
	Verified   bool    `db:"verified"`

	OTPCode      *string    `db:"otp_code"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
}
