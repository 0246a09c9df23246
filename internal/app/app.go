// Package app wires configuration, storage and services into a runnable
// application core.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wealthlens/wealthlens/internal/common"
	"github.com/wealthlens/wealthlens/internal/interfaces"
	"github.com/wealthlens/wealthlens/internal/models"
	"github.com/wealthlens/wealthlens/internal/services/portfolio"
	"github.com/wealthlens/wealthlens/internal/statement"
	"github.com/wealthlens/wealthlens/internal/storage"
)

// App holds all initialized services and storage. It is the shared core used
// by cmd/wealthlens-server and by handler tests.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	Rules            *models.RulesConfig
	PortfolioService interfaces.PortfolioService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, and services. configPath may be
// empty, in which case WEALTHLENS_CONFIG and the binary directory are tried.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("WEALTHLENS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "wealthlens.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/wealthlens.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	rules, err := config.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load insight rules: %w", err)
	}

	storageManager, err := storage.NewManager(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	parser := statement.NewParser(config.Ingest.USDToINRRate, logger)
	portfolioService := portfolio.NewService(storageManager, parser, rules, logger)

	return &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		Rules:            rules,
		PortfolioService: portfolioService,
		StartupTime:      time.Now(),
	}, nil
}

// Close releases storage resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
