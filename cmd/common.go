package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/papapumpkin/folio/internal/bundle"
	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/config"
	"github.com/papapumpkin/folio/internal/content"
	"github.com/papapumpkin/folio/internal/logging"
	"github.com/papapumpkin/folio/internal/site"
)

// defaultWidth is used for plain output when the terminal size is unknown.
const defaultWidth = 80

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Quiet loggers discard everything
// unless log.file is set.
func newLogger(cfg config.Config, quiet bool) (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Verbose: cfg.Verbose,
		File:    cfg.Log.File,
		Quiet:   quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// contentFS returns the configured content root: a directory on disk, or the
// embedded pages when content_dir is empty.
func contentFS(cfg config.Config) fs.FS {
	if cfg.ContentDir == "" {
		return bundle.FS()
	}
	return os.DirFS(cfg.ContentDir)
}

func loadCatalog(cfg config.Config, logger *zap.Logger) (*catalog.Catalog, []content.Issue, error) {
	cat, issues, err := catalog.Load(contentFS(cfg), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content: %w", err)
	}
	return cat, issues, nil
}

// loadSite loads the catalog with a logger that stays silent unless verbose.
func loadSite(cfg config.Config) (*site.Site, []content.Issue, error) {
	logger, err := newLogger(cfg, !cfg.Verbose)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = logger.Sync() }()

	cat, issues, err := loadCatalog(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return site.New(cat), issues, nil
}

// startWatcher begins watching the content directory. It returns nil when
// watching was not requested or content is embedded.
func startWatcher(cfg config.Config, logger *zap.Logger) (*content.Watcher, error) {
	if !cfg.Watch {
		return nil, nil
	}
	if cfg.ContentDir == "" {
		logger.Warn("watch ignored: content is embedded")
		return nil, nil
	}
	w, err := content.NewWatcher(cfg.ContentDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", cfg.ContentDir, err)
	}
	return w, nil
}

// reloadLoop reloads the catalog after every change w reports, until ctx is
// done. A failed reload keeps the previous catalog. It stops w on return.
func reloadLoop(ctx context.Context, w *content.Watcher, cfg config.Config, logger *zap.Logger,
	reloaded func(*catalog.Catalog), failed func(error)) error {
	defer w.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			cat, _, err := loadCatalog(cfg, logger)
			if err != nil {
				logger.Error("content reload failed", zap.String("file", change.File), zap.Error(err))
				failed(err)
				continue
			}
			logger.Info("content reloaded", zap.String("file", change.File), zap.Int("posts", cat.Len()))
			reloaded(cat)
		}
	}
}

func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
