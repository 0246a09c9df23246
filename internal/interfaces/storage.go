// Package interfaces defines service contracts for WealthLens
package interfaces

import (
	"context"

	"github.com/wealthlens/wealthlens/internal/models"
)

// StorageManager coordinates all storage backends
type StorageManager interface {
	PortfolioStore() PortfolioStore
	UserStore() UserStore

	// DataPath returns the base data directory path.
	DataPath() string

	// Lifecycle
	Close() error
}

// PortfolioStore persists one portfolio document per user.
type PortfolioStore interface {
	// Get returns the user's portfolio, or nil when none has been created yet.
	Get(ctx context.Context, userID string) (*models.Portfolio, error)
	Save(ctx context.Context, portfolio *models.Portfolio) error
	Delete(ctx context.Context, userID string) error
}

// UserStore manages user accounts and pending OTP challenges.
type UserStore interface {
	GetUser(ctx context.Context, phone string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, phone string) error

	// OTP challenges are keyed by phone; saving replaces any pending challenge.
	GetChallenge(ctx context.Context, phone string) (*models.OTPChallenge, error)
	SaveChallenge(ctx context.Context, challenge *models.OTPChallenge) error
	DeleteChallenge(ctx context.Context, phone string) error
}
