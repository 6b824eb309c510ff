// Package cli provides the cferrpage commands.
//
// Example usage:
//
//	cferrpage generate --code 502 --domain example.org > 502.html
//	cferrpage export --form page.yaml --dir public/
//	cferrpage preview --form page.yaml --watch --open
package cli

// This file holds the PageManager shared by the page commands (generate,
// export, copy, preview, config) and the wiring of its dependencies.

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"cferrpage/internal/config"
	"cferrpage/internal/export"
	"cferrpage/internal/render"
)

// PageManager renders and delivers error pages with injected dependencies.
type PageManager struct {
	store      *config.Store
	renderer   *render.Renderer
	clipboard  export.Clipboard
	downloader export.Downloader
	exec       Executor
	printer    *Printer
	cfg        CLIConfig
	logger     *zap.Logger
}

// NewPageManager creates a PageManager with the given dependencies.
func NewPageManager(
	store *config.Store,
	renderer *render.Renderer,
	clipboard export.Clipboard,
	downloader export.Downloader,
	exec Executor,
	printer *Printer,
	cfg CLIConfig,
	logger *zap.Logger,
) *PageManager {
	return &PageManager{
		store:      store,
		renderer:   renderer,
		clipboard:  clipboard,
		downloader: downloader,
		exec:       exec,
		printer:    printer,
		cfg:        cfg,
		logger:     logger,
	}
}

// DefaultPageManager returns a PageManager using the system clipboard, the
// local filesystem and DefaultCLIConfig. The store and clipboard log through
// logger.
func DefaultPageManager(logger *zap.Logger) *PageManager {
	logr := zapr.NewLogger(logger)
	store := config.New(config.WithLogger(logr.WithName("config")))

	clipOpts := []export.ClipboardOption{export.WithClipboardLogger(logr.WithName("clipboard"))}
	if !DefaultCLIConfig.ClipboardFallback {
		clipOpts = append(clipOpts, export.WithFallback(nil))
	}

	return NewPageManager(
		store,
		render.New(),
		export.NewSystemClipboard(clipOpts...),
		export.NewFileDownloader(),
		execExecutor,
		DefaultPrinter,
		DefaultCLIConfig,
		logger,
	)
}

// Store returns the manager's config store.
func (m *PageManager) Store() *config.Store {
	return m.store
}
