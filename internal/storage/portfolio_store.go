package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/models"
)

// PortfolioStore persists one Portfolio document per user, keyed by user ID.
type PortfolioStore struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// Get returns the user's portfolio, or nil when none exists.
func (s *PortfolioStore) Get(_ context.Context, userID string) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.db.Get(userID, &p); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portfolio for '%s': %w", userID, err)
	}
	return &p, nil
}

func (s *PortfolioStore) Save(_ context.Context, portfolio *models.Portfolio) error {
	if portfolio.UserID == "" {
		return fmt.Errorf("portfolio has no user ID")
	}
	portfolio.UpdatedAt = time.Now()
	if err := s.db.Upsert(portfolio.UserID, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio for '%s': %w", portfolio.UserID, err)
	}
	s.logger.Debug().
		Str("user_id", portfolio.UserID).
		Int("sources", len(portfolio.Sources)).
		Int("manual", len(portfolio.Manual)).
		Msg("Portfolio saved")
	return nil
}

func (s *PortfolioStore) Delete(_ context.Context, userID string) error {
	if err := s.db.Delete(userID, models.Portfolio{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete portfolio for '%s': %w", userID, err)
	}
	s.logger.Debug().Str("user_id", userID).Msg("Portfolio deleted")
	return nil
}
