package models

import "time"

// User represents a user account keyed by phone number.
type User struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// OTPChallenge is a pending one-time-password login attempt. The OTP itself
// is stored as a bcrypt hash, never in the clear.
type OTPChallenge struct {
	Phone     string    `json:"phone"`
	OTPHash   string    `json:"otp_hash"`
	CreatedAt time.Time `json:"created_at"`
	Attempts  int       `json:"attempts"`
}
