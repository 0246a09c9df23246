package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/models"
)

// UserStore persists user accounts and pending OTP challenges, both keyed by
// phone number.
type UserStore struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// GetUser returns the account for a phone number, or nil when unregistered.
func (s *UserStore) GetUser(_ context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Get(phone, &user); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", phone, err)
	}
	return &user, nil
}

func (s *UserStore) SaveUser(_ context.Context, user *models.User) error {
	if user.Phone == "" {
		return fmt.Errorf("user has no phone number")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := s.db.Upsert(user.Phone, user); err != nil {
		return fmt.Errorf("failed to save user '%s': %w", user.Phone, err)
	}
	s.logger.Debug().Str("phone", user.Phone).Msg("User saved")
	return nil
}

func (s *UserStore) DeleteUser(_ context.Context, phone string) error {
	if err := s.db.Delete(phone, models.User{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete user '%s': %w", phone, err)
	}
	return nil
}

// GetChallenge returns the pending OTP challenge, or nil when none exists.
func (s *UserStore) GetChallenge(_ context.Context, phone string) (*models.OTPChallenge, error) {
	var ch models.OTPChallenge
	if err := s.db.Get(phone, &ch); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP challenge for '%s': %w", phone, err)
	}
	return &ch, nil
}

// SaveChallenge replaces any pending challenge for the phone number.
func (s *UserStore) SaveChallenge(_ context.Context, challenge *models.OTPChallenge) error {
	if challenge.Phone == "" {
		return fmt.Errorf("challenge has no phone number")
	}
	if err := s.db.Upsert(challenge.Phone, challenge); err != nil {
		return fmt.Errorf("failed to save OTP challenge for '%s': %w", challenge.Phone, err)
	}
	return nil
}

func (s *UserStore) DeleteChallenge(_ context.Context, phone string) error {
	if err := s.db.Delete(phone, models.OTPChallenge{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete OTP challenge for '%s': %w", phone, err)
	}
	return nil
}
