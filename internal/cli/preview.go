package cli

// This file implements the "preview" command. It writes the preview document
// and, with --watch, re-applies the form file whenever it changes; a store
// listener re-renders the preview after every update.

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cferrpage/internal/config"
)

// NewPreviewCmd builds the preview command.
func NewPreviewCmd(logger *zap.Logger) *cobra.Command {
	return NewPreviewCmdWithManager(DefaultPageManager(logger))
}

// NewPreviewCmdWithManager returns the preview command using the provided manager.
func NewPreviewCmdWithManager(mgr *PageManager) *cobra.Command {
	var form formInput
	var file string
	var watch bool
	var open bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a live preview of the error page",
		Long: `Write the preview document to a file.

With --watch the form file is re-read on every change and the preview is
re-rendered until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && form.file == "" {
				err := newWithSentinel(ErrWatchRequiresForm, "--watch requires --form")
				return reportError(mgr.printer, mgr.logger, err, "Nothing to watch")
			}
			if err := form.apply(cmd, mgr); err != nil {
				return err
			}
			if file == "" {
				file = mgr.cfg.PreviewFile
			}

			path, err := mgr.writePreview(file, mgr.store.Get())
			if err != nil {
				return err
			}
			mgr.printer.Success("Preview written to " + path)

			if open {
				if err := mgr.OpenPreview(path); err != nil {
					return err
				}
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return mgr.WatchPreview(ctx, cmd, &form, file)
		},
	}

	form.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "Preview file (default from CFERR_PREVIEW_FILE)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-render when the --form file changes")
	cmd.Flags().BoolVar(&open, "open", false, "Open the preview in the default browser")

	return cmd
}

func (m *PageManager) writePreview(file string, c config.Configuration) (string, error) {
	path, err := m.downloader.SaveHTML(filepath.Dir(file), filepath.Base(file), m.renderer.GeneratePreview(c))
	if err != nil {
		wrappedErr := wrapWithSentinelAndContext(ErrWritePreviewFailed, err,
			fmt.Sprintf("failed to write preview: %v", err),
			map[string]any{"file": file})
		return "", reportError(m.printer, m.logger, wrappedErr, "Failed to write preview")
	}
	return path, nil
}

// OpenPreview opens path with the desktop's default handler.
func (m *PageManager) OpenPreview(path string) error {
	if err := openInBrowser(m.exec, path); err != nil {
		wrappedErr := wrapWithSentinelAndContext(ErrOpenPreviewFailed, err,
			fmt.Sprintf("failed to open preview: %v", err),
			map[string]any{"path": path})
		return reportError(m.printer, m.logger, wrappedErr, "Failed to open preview")
	}
	return nil
}

// WatchPreview re-applies form whenever its file changes and keeps file in
// sync with the store until ctx is done. Events are debounced by
// CLIConfig.WatchDebounce. Errors while re-applying are reported and the
// watch continues.
func (m *PageManager) WatchPreview(ctx context.Context, cmd *cobra.Command, form *formInput, file string) error {
	sub, err := m.store.OnChange(func(c config.Configuration) {
		if _, err := m.writePreview(file, c); err == nil {
			m.printer.Step("Preview updated")
		}
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	target, err := filepath.Abs(form.file)
	if err != nil {
		return m.watchError(err, form.file)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return m.watchError(err, target)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return m.watchError(err, target)
	}
	m.printer.Info("Watching " + form.file + " (Ctrl+C to stop)")

	reload := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			m.logger.Debug("Form file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if debounce == nil {
				debounce = time.AfterFunc(m.cfg.WatchDebounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				debounce.Reset(m.cfg.WatchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logStructuredError(m.logger, m.wrapWatchError(err, target), "Watcher error")

		case <-reload:
			if _, statErr := os.Stat(target); statErr != nil {
				// Mid-replace; the Create event that follows triggers another reload.
				continue
			}
			_ = form.apply(cmd, m)
		}
	}
}

func (m *PageManager) wrapWatchError(err error, path string) error {
	return wrapWithSentinelAndContext(ErrWatchFormFailed, err,
		fmt.Sprintf("failed to watch form file: %v", err),
		map[string]any{"path": path})
}

func (m *PageManager) watchError(err error, path string) error {
	return reportError(m.printer, m.logger, m.wrapWatchError(err, path), "Failed to watch form file")
}
