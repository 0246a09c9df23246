// Package storage implements the persistence layer using BadgerHold, an
// embedded key-value store. One database holds both portfolios and users.
package storage

import (
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/interfaces"
)

// Manager implements interfaces.StorageManager over a single BadgerHold
// database.
type Manager struct {
	db     *badgerhold.Store
	path   string
	logger *common.Logger

	portfolios *PortfolioStore
	users      *UserStore
}

// NewManager opens (creating if needed) the database at the configured path.
func NewManager(config *common.Config, logger *common.Logger) (*Manager, error) {
	path := config.Storage.Path
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data path %s: %w", path, err)
	}

	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil

	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("Database opened")

	return &Manager{
		db:         db,
		path:       path,
		logger:     logger,
		portfolios: &PortfolioStore{db: db, logger: logger},
		users:      &UserStore{db: db, logger: logger},
	}, nil
}

func (m *Manager) PortfolioStore() interfaces.PortfolioStore {
	return m.portfolios
}

func (m *Manager) UserStore() interfaces.UserStore {
	return m.users
}

func (m *Manager) DataPath() string {
	return m.path
}

// Close shuts down the database.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
