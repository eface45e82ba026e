// Package cli wires configuration, logging and the item-source store for the commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/build"
	"github.com/bnema/listnav/internal/infrastructure/cache"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/listnav/internal/logging"
)

// sourceCacheSize bounds how many stored sources stay loaded in memory.
const sourceCacheSize = 8

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	ConfigErr error

	db *sqlite.LazyDB

	// Use cases
	LoadItemsUC    *usecase.LoadItemsUseCase
	ImportSourceUC *usecase.ImportSourceUseCase

	// Context with logger
	ctx       context.Context
	logConfig logging.Config
	rotator   *logging.LogRotator
}

// NewApp creates a new CLI application with all dependencies. A broken
// config file falls back to defaults and is reported through ConfigErr.
func NewApp() (*App, error) {
	mgr, cfgErr := loadConfig()
	cfg := config.DefaultConfig()
	if mgr != nil {
		cfg = mgr.Get()
	}

	logCfg := logging.ConfigFromEnv(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     logFormat(cfg.Logging.Format),
		TimeFormat: "15:04:05",
	})
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		var err error
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	// The store opens on first use; built-in sources never touch it.
	db := sqlite.NewLazyDB(dbPath)
	sources := sqlite.NewSourceRepository(db)
	loaded := cache.NewLRU[string, *usecase.LoadItemsOutput](sourceCacheSize)

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          styles.NewTheme(),
		ConfigErr:      cfgErr,
		db:             db,
		LoadItemsUC:    usecase.NewLoadItemsUseCase(sources).WithCache(loaded),
		ImportSourceUC: usecase.NewImportSourceUseCase(sources).WithCache(loaded),
		ctx:            ctx,
		logConfig:      logCfg,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.rotator != nil {
		_ = a.rotator.Close()
	}
	return a.db.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabaseInitialized reports whether a command opened the source store.
func (a *App) DatabaseInitialized() bool {
	return a.db.IsInitialized()
}

// TUIContext returns a context whose logger stays off the terminal while a
// demo owns it: a rotated file when file logging is enabled, nothing otherwise.
func (a *App) TUIContext() context.Context {
	var out io.Writer = io.Discard
	if a.Config.Logging.EnableFileLog {
		rotator, err := logging.NewLogRotator(logging.RotateConfig{
			Dir:        a.Config.Logging.LogDir,
			MaxSizeMB:  a.Config.Logging.MaxSizeMB,
			MaxBackups: a.Config.Logging.MaxBackups,
			MaxAgeDays: a.Config.Logging.MaxAge,
			Compress:   a.Config.Logging.Compress,
		})
		if err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("file logging unavailable")
		} else {
			a.rotator = rotator
			out = rotator
		}
	}

	cfg := a.logConfig
	cfg.Output = out
	if out == io.Discard {
		cfg.Level = zerolog.Disabled
	}
	return logging.WithContext(context.Background(), logging.New(cfg))
}

// loadConfig loads configuration from standard locations.
func loadConfig() (*config.Manager, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return mgr, err
	}
	return mgr, nil
}

// logFormat maps the config's "text" format onto zerolog's console writer.
func logFormat(format string) string {
	if format == "json" {
		return "json"
	}
	return "console"
}

// DatabasePath returns the source store location.
func (a *App) DatabasePath() string {
	return a.db.Path()
}
