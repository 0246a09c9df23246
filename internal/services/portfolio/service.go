// Package portfolio implements ingestion, manual-entry mutation, and the
// consolidated portfolio view.
package portfolio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/interfaces"
	"github.com/wealthlens/wealthlens/internal/models"
	"github.com/wealthlens/wealthlens/internal/services/analytics"
	"github.com/wealthlens/wealthlens/internal/services/insight"
	"github.com/wealthlens/wealthlens/internal/statement"
)

// Service implements interfaces.PortfolioService.
type Service struct {
	storage  interfaces.StorageManager
	parser   *statement.Parser
	insights *insight.Generator
	logger   *common.Logger
	locks    userLocks
}

// NewService creates a portfolio service.
func NewService(storage interfaces.StorageManager, parser *statement.Parser, rules *models.RulesConfig, logger *common.Logger) *Service {
	return &Service{
		storage:  storage,
		parser:   parser,
		insights: insight.NewGenerator(rules),
		logger:   logger,
	}
}

// IngestStatement parses the uploaded PDF and merges its holdings into the
// user's portfolio. The source is fingerprinted by SHA-256 of the raw bytes;
// a fingerprint already present makes the upload a no-op with
// Duplicate=true. Nothing is persisted unless parsing succeeds.
func (s *Service) IngestStatement(ctx context.Context, userID, filename string, content []byte, password string) (*models.PortfolioView, error) {
	sum := sha256.Sum256(content)
	sourceID := hex.EncodeToString(sum[:])

	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.HasSource(sourceID) {
		s.logger.Info().
			Str("user_id", userID).
			Str("source_id", sourceID).
			Str("filename", filename).
			Msg("Duplicate statement upload, portfolio unchanged")
		view := s.buildView(p)
		view.Duplicate = true
		return view, nil
	}

	parsed, err := s.parser.Parse(filename, content, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	source := &models.StatementSource{
		SourceID:   sourceID,
		Format:     parsed.Format,
		Filename:   filename,
		UploadedAt: now,
	}
	for _, h := range parsed.Holdings {
		if h.ValuationDate.IsZero() {
			h.ValuationDate = parsed.ValuationDate
		}
		source.Holdings = append(source.Holdings, *h)
	}

	p.Sources[sourceID] = source
	if err := s.storage.PortfolioStore().Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("source_id", sourceID).
		Str("format", string(parsed.Format)).
		Int("holdings", len(source.Holdings)).
		Msg("Statement ingested")

	return s.buildView(p), nil
}

// AddManualHolding validates the entry, computes the derived fields, and
// upserts it keyed by normalized scheme name.
func (s *Service) AddManualHolding(ctx context.Context, userID string, entry *models.ManualEntry) (*models.PortfolioView, error) {
	h, err := buildManualHolding(entry)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.Manual[models.NormalizeSchemeName(h.SchemeName)] = h
	if err := s.storage.PortfolioStore().Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("scheme", h.SchemeName).
		Str("asset_class", string(h.AssetClass)).
		Msg("Manual holding saved")

	return s.buildView(p), nil
}

// DeleteManualHolding removes a manual holding. Deleting an absent scheme is
// a successful no-op.
func (s *Service) DeleteManualHolding(ctx context.Context, userID, schemeName string) (*models.PortfolioView, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := models.NormalizeSchemeName(schemeName)
	if _, ok := p.Manual[key]; ok {
		delete(p.Manual, key)
		if err := s.storage.PortfolioStore().Save(ctx, p); err != nil {
			return nil, err
		}
		s.logger.Info().Str("user_id", userID).Str("scheme", schemeName).Msg("Manual holding deleted")
	}

	return s.buildView(p), nil
}

// RemoveSource drops an ingested statement and everything it contributed.
// Removing an unknown source is a no-op.
func (s *Service) RemoveSource(ctx context.Context, userID, sourceID string) (*models.PortfolioView, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := p.Sources[sourceID]; ok {
		delete(p.Sources, sourceID)
		if err := s.storage.PortfolioStore().Save(ctx, p); err != nil {
			return nil, err
		}
		s.logger.Info().Str("user_id", userID).Str("source_id", sourceID).Msg("Statement source removed")
	}

	return s.buildView(p), nil
}

// Reset deletes the user's portfolio entirely.
func (s *Service) Reset(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.storage.PortfolioStore().Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("Portfolio reset")
	return nil
}

// GetPortfolio returns the full computed view, recomputed from the persisted
// portfolio on every call.
func (s *Service) GetPortfolio(ctx context.Context, userID string) (*models.PortfolioView, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(p), nil
}

// ListSources returns metadata for every ingested statement, newest first.
func (s *Service) ListSources(ctx context.Context, userID string) ([]models.SourceInfo, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sourceInfos(p), nil
}

// RenderAllocationChart renders the current asset allocation as a PNG.
func (s *Service) RenderAllocationChart(ctx context.Context, userID string) ([]byte, error) {
	view, err := s.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.RenderAllocationChart(view.AssetAllocation)
}

// load fetches the user's portfolio, creating an empty one in memory (not
// persisted) when none exists yet.
func (s *Service) load(ctx context.Context, userID string) (*models.Portfolio, error) {
	p, err := s.storage.PortfolioStore().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = models.NewPortfolio(userID)
	}
	if p.Sources == nil {
		p.Sources = map[string]*models.StatementSource{}
	}
	if p.Manual == nil {
		p.Manual = map[string]*models.Holding{}
	}
	return p, nil
}

// buildView recomputes the merged holdings, analytics tables, and insights.
func (s *Service) buildView(p *models.Portfolio) *models.PortfolioView {
	merged := mergeHoldings(p)
	analytics.SortHoldings(merged)

	summary := analytics.Summarize(merged, countFolios(merged))
	assetAlloc := analytics.AssetAllocation(merged)
	amcAlloc := analytics.AMCAllocation(merged)
	report := s.insights.Generate(merged, summary, assetAlloc, amcAlloc)

	return &models.PortfolioView{
		Summary:         summary,
		Holdings:        merged,
		AssetAllocation: assetAlloc,
		AMCAllocation:   amcAlloc,
		Insights:        report,
		Sources:         sourceInfos(p),
	}
}

func sourceInfos(p *models.Portfolio) []models.SourceInfo {
	infos := make([]models.SourceInfo, 0, len(p.Sources))
	for _, src := range p.Sources {
		infos = append(infos, models.SourceInfo{
			SourceID:      src.SourceID,
			Format:        src.Format,
			Filename:      src.Filename,
			UploadedAt:    src.UploadedAt,
			HoldingsCount: len(src.Holdings),
			TotalValue:    src.TotalValue(),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].UploadedAt.Equal(infos[j].UploadedAt) {
			return infos[i].UploadedAt.After(infos[j].UploadedAt)
		}
		return infos[i].SourceID < infos[j].SourceID
	})
	return infos
}

// buildManualHolding validates a manual entry and computes the derived
// fields. Caller-supplied derived values are never trusted.
func buildManualHolding(entry *models.ManualEntry) (*models.Holding, error) {
	if entry == nil {
		return nil, invalid("entry", "missing body")
	}
	if entry.SchemeName == "" {
		return nil, invalid("scheme_name", "required")
	}
	if entry.Units <= 0 {
		return nil, invalid("units", "must be a positive number")
	}
	if entry.NAV <= 0 {
		return nil, invalid("nav", "must be a positive number")
	}
	if entry.PurchaseNAV < 0 || entry.InvestedAmount < 0 {
		return nil, invalid("purchase_nav", "must not be negative")
	}

	invested := entry.InvestedAmount
	if invested == 0 && entry.PurchaseNAV > 0 {
		invested = entry.Units * entry.PurchaseNAV
	}

	amc := entry.AMC
	if amc == "" {
		amc = "Manual"
	}

	h := &models.Holding{
		SchemeName:     entry.SchemeName,
		AssetClass:     models.ParseAssetClass(entry.AssetClass),
		AMC:            amc,
		Units:          entry.Units,
		NAV:            entry.NAV,
		InvestedAmount: invested,
		Source:         models.SourceManual,
		ValuationDate:  time.Now(),
	}
	h.Recompute()
	return h, nil
}
