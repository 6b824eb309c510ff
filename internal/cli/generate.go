package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cferrpage/internal/export"
)

// NewGenerateCmd builds the generate command.
func NewGenerateCmd(logger *zap.Logger) *cobra.Command {
	return NewGenerateCmdWithManager(DefaultPageManager(logger))
}

// NewGenerateCmdWithManager returns the generate command using the provided manager.
func NewGenerateCmdWithManager(mgr *PageManager) *cobra.Command {
	var form formInput
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render an error page",
		Long:  "Render an error page to stdout, or to a file with --output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.apply(cmd, mgr); err != nil {
				return err
			}
			if output == "" {
				return mgr.WritePage(cmd)
			}
			_, err := mgr.SavePage(filepath.Dir(output), filepath.Base(output))
			return err
		},
	}

	form.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page to this file instead of stdout")

	return cmd
}

// NewExportCmd builds the export command.
func NewExportCmd(logger *zap.Logger) *cobra.Command {
	return NewExportCmdWithManager(DefaultPageManager(logger))
}

// NewExportCmdWithManager returns the export command using the provided manager.
func NewExportCmdWithManager(mgr *PageManager) *cobra.Command {
	var form formInput
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save an error page as cloudflare-error-<code>.html",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.apply(cmd, mgr); err != nil {
				return err
			}
			if dir == "" {
				dir = mgr.cfg.OutputDir
			}
			_, err := mgr.SavePage(dir, export.Filename(mgr.store.Get().ErrorCode))
			return err
		},
	}

	form.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default from CFERR_OUTPUT_DIR or .)")

	return cmd
}

// WritePage renders the current configuration to the command's stdout.
func (m *PageManager) WritePage(cmd *cobra.Command) error {
	c := m.store.Get()
	if err := m.renderer.Render(cmd.OutOrStdout(), c); err != nil {
		wrappedErr := wrapWithSentinelAndContext(ErrRenderFailed, err,
			fmt.Sprintf("failed to render error page: %v", err),
			map[string]any{"code": c.ErrorCode})
		return reportError(m.printer, m.logger, wrappedErr, "Failed to render error page")
	}
	return nil
}

// SavePage renders the current configuration and saves it as dir/filename.
func (m *PageManager) SavePage(dir, filename string) (string, error) {
	c := m.store.Get()
	path, err := m.downloader.SaveHTML(dir, filename, m.renderer.GenerateHTML(c))
	if err != nil {
		wrappedErr := wrapWithSentinelAndContext(ErrSavePageFailed, err,
			fmt.Sprintf("failed to save error page: %v", err),
			map[string]any{"dir": dir, "filename": filename, "code": c.ErrorCode})
		return "", reportError(m.printer, m.logger, wrappedErr, "Failed to save error page")
	}
	m.logger.Debug("Saved error page", zap.String("path", path), zap.String("code", c.ErrorCode))
	m.printer.Success("Saved " + path)
	return path, nil
}
