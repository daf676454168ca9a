package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/flick/internal/adapter"
	"github.com/mmcdole/flick/internal/browse"
	"github.com/mmcdole/flick/internal/domain"
	"github.com/mmcdole/flick/internal/lists"
	"github.com/mmcdole/flick/internal/store"
	"github.com/mmcdole/flick/internal/tmdb"
)

// app bundles the services every command is built from
type app struct {
	cfg       *adapter.Config
	logger    *slog.Logger
	kv        *store.Store
	client    *tmdb.Client
	history   *lists.History
	favorites *lists.Favorites

	logCloser io.Closer
}

// loadApp reads the configuration and opens the logger and the store.
// The API client is created even without a key; callers that reach the
// network check requireKey first. Problems that do not stop the command
// are reported on stderr.
func loadApp(configPath string, stderr io.Writer) (*app, error) {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return newApp(cfg, stderr)
}

func newApp(cfg *adapter.Config, stderr io.Writer) (*app, error) {
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = adapter.NullLogger(), adapter.NopCloser{}
		adapter.ConsoleLogger(stderr, slog.LevelWarn).Warn("file logging disabled", "file", cfg.Logging.File, "error", err)
	}
	slog.SetDefault(logger)

	kv, err := store.NewStore(cfg.Store.Path, cfg.API.BaseURL)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		kv:        kv,
		client:    tmdb.NewClient(cfg.API.BaseURL, cfg.API.Key, logger, tmdb.WithTimeout(cfg.API.Timeout)),
		history:   lists.NewHistory(kv, cfg.Search.HistorySize, logger),
		favorites: lists.NewFavorites(kv, logger),
		logCloser: closer,
	}, nil
}

func (a *app) requireKey() error {
	if !a.cfg.IsConfigured() {
		return fmt.Errorf("%w: run `flick config init` or set FLICK_API_KEY", domain.ErrNotConfigured)
	}
	return nil
}

// session builds a browse session starting on category
func (a *app) session(category domain.Category) *browse.Session {
	return browse.New(a.client, a.kv, a.history, a.favorites, browse.Options{
		Debounce:        a.cfg.Search.Debounce,
		MinQueryLength:  a.cfg.Search.MinLength,
		RequestTimeout:  a.cfg.API.Timeout,
		InitialCategory: category,
		Logger:          a.logger,
	})
}

func (a *app) Close() error {
	err := a.kv.Close()
	a.logCloser.Close()
	return err
}
