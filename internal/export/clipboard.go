package export

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"cferrpage/pkg/errx"
)

// Clipboard copies text and reports whether it succeeded.
type Clipboard interface {
	Copy(ctx context.Context, text string) bool
}

// SystemClipboard writes to the OS clipboard and, when that is unavailable,
// falls back to an OSC 52 escape sequence on the terminal.
type SystemClipboard struct {
	write       func(string) error
	unsupported bool
	fallback    io.Writer
	isTerminal  func(io.Writer) bool
	logger      logr.Logger
}

// ClipboardOption configures a SystemClipboard.
type ClipboardOption func(*SystemClipboard)

// WithFallback sets the terminal the OSC 52 sequence is written to.
// A nil writer disables the fallback.
func WithFallback(w io.Writer) ClipboardOption {
	return func(c *SystemClipboard) {
		c.fallback = w
	}
}

// WithClipboardLogger sets the logger used to report copy failures.
func WithClipboardLogger(logger logr.Logger) ClipboardOption {
	return func(c *SystemClipboard) {
		c.logger = logger
	}
}

// NewSystemClipboard returns a clipboard using the OS clipboard utilities,
// with stderr as the fallback terminal.
func NewSystemClipboard(opts ...ClipboardOption) *SystemClipboard {
	c := &SystemClipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		fallback:    os.Stderr,
		isTerminal:  isTerminal,
		logger:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy places text on the clipboard. It returns false when neither the OS
// clipboard nor the terminal fallback accepted the text, or when ctx is done.
func (c *SystemClipboard) Copy(ctx context.Context, text string) bool {
	if ctx.Err() != nil {
		return false
	}

	var primaryErr error
	if c.unsupported {
		primaryErr = errx.Clipboard("system clipboard is not supported on this platform")
	} else {
		primaryErr = c.writeWithContext(ctx, text)
	}
	if primaryErr == nil {
		return true
	}
	if ctx.Err() != nil {
		return false
	}
	c.logger.V(1).Info("System clipboard unavailable, trying terminal fallback", "reason", primaryErr.Error())

	if err := c.copyFallback(text); err != nil {
		c.logger.Error(err, "Clipboard copy failed")
		return false
	}
	return true
}

func (c *SystemClipboard) writeWithContext(ctx context.Context, text string) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- errx.Clipboard("system clipboard panicked")
			}
		}()
		done <- c.write(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errx.WrapClipboard("failed to write system clipboard", err)
		}
		return nil
	case <-ctx.Done():
		return errx.WrapClipboard("clipboard copy cancelled", ctx.Err())
	}
}

func (c *SystemClipboard) copyFallback(text string) error {
	if c.fallback == nil {
		return errx.Clipboard("no clipboard fallback configured")
	}
	if !c.isTerminal(c.fallback) {
		return errx.Clipboard("clipboard fallback requires a terminal")
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.fallback); err != nil {
		return errx.WrapClipboard("failed to write terminal clipboard sequence", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
