// Package interfaces defines service contracts for WealthLens
package interfaces

import (
	"context"

	"github.com/wealthlens/wealthlens/internal/models"
)

// PortfolioService manages portfolio operations
type PortfolioService interface {
	// IngestStatement parses a PDF statement and merges its holdings into the
	// user's portfolio. Re-uploading identical content is a no-op reported via
	// PortfolioView.Duplicate.
	IngestStatement(ctx context.Context, userID, filename string, content []byte, password string) (*models.PortfolioView, error)

	// AddManualHolding adds or replaces a manually entered holding.
	AddManualHolding(ctx context.Context, userID string, entry *models.ManualEntry) (*models.PortfolioView, error)

	// DeleteManualHolding removes a manual holding by scheme name. Deleting a
	// holding that does not exist is not an error.
	DeleteManualHolding(ctx context.Context, userID, schemeName string) (*models.PortfolioView, error)

	// RemoveSource drops an ingested statement and all holdings it contributed.
	RemoveSource(ctx context.Context, userID, sourceID string) (*models.PortfolioView, error)

	// Reset deletes the user's entire portfolio.
	Reset(ctx context.Context, userID string) error

	// GetPortfolio returns the current consolidated view with analytics and
	// insights recomputed.
	GetPortfolio(ctx context.Context, userID string) (*models.PortfolioView, error)

	// ListSources returns metadata for every ingested statement.
	ListSources(ctx context.Context, userID string) ([]models.SourceInfo, error)

	// RenderAllocationChart renders the asset allocation as a PNG donut chart.
	RenderAllocationChart(ctx context.Context, userID string) ([]byte, error)
}
