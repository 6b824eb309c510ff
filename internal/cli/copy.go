package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCopyCmd builds the copy command.
func NewCopyCmd(logger *zap.Logger) *cobra.Command {
	return NewCopyCmdWithManager(DefaultPageManager(logger))
}

// NewCopyCmdWithManager returns the copy command using the provided manager.
func NewCopyCmdWithManager(mgr *PageManager) *cobra.Command {
	var form formInput

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy an error page's HTML to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.apply(cmd, mgr); err != nil {
				return err
			}
			return mgr.CopyPage(cmd.Context())
		},
	}

	form.register(cmd)

	return cmd
}

// CopyPage renders the current configuration and copies it to the clipboard.
func (m *PageManager) CopyPage(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, clipboardTimeout)
	defer cancel()

	c := m.store.Get()
	if !m.clipboard.Copy(ctx, m.renderer.GenerateHTML(c)) {
		err := wrapWithSentinelAndContext(ErrClipboardCopyFailed, ctx.Err(),
			"failed to copy to clipboard", map[string]any{"code": c.ErrorCode})
		return reportError(m.printer, m.logger, err, "Failed to copy HTML to clipboard")
	}
	m.printer.Success("HTML copied to clipboard")
	return nil
}
