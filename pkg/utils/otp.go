package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const otpDigits = 1000000

// GenerateOTP returns a uniformly random 6-digit code with leading zeros
// preserved ("042917" is a valid code).
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpDigits))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPExpiry returns the expiry instant for a code issued at now.
func OTPExpiry(now time.Time, expiryMinutes int) time.Time {
	return now.Add(time.Duration(expiryMinutes) * time.Minute)
}

// ValidOTP reports whether the candidate matches the stored code before its
// expiry. Comparison is exact string match, no trimming. It never errors:
// a nil code, a mismatch and an expired code all just answer false.
func ValidOTP(stored *string, expiresAt *time.Time, candidate string, now time.Time) bool {
	if stored == nil || expiresAt == nil {
		return false
	}
	return *stored == candidate && now.Before(*expiresAt)
}
