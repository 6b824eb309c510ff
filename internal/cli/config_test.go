package cli

import (
	"testing"
	"time"
)

func TestLoadCLIConfig(t *testing.T) {
	t.Run("uses defaults when env vars not set", func(t *testing.T) {
		t.Setenv("CFERR_OUTPUT_DIR", "")
		t.Setenv("CFERR_PREVIEW_FILE", "")
		t.Setenv("CFERR_WATCH_DEBOUNCE", "")
		t.Setenv("CFERR_CLIPBOARD_FALLBACK", "")

		assertCLIConfig(t, LoadCLIConfig(), CLIConfig{
			OutputDir:         defaultOutputDir,
			PreviewFile:       defaultPreviewFile,
			WatchDebounce:     defaultWatchDebounce,
			ClipboardFallback: defaultClipboardFallback,
		})
	})

	t.Run("reads env vars when set", func(t *testing.T) {
		t.Setenv("CFERR_OUTPUT_DIR", "public")
		t.Setenv("CFERR_PREVIEW_FILE", "/tmp/p.html")
		t.Setenv("CFERR_WATCH_DEBOUNCE", "1s")
		t.Setenv("CFERR_CLIPBOARD_FALLBACK", "false")

		assertCLIConfig(t, LoadCLIConfig(), CLIConfig{
			OutputDir:         "public",
			PreviewFile:       "/tmp/p.html",
			WatchDebounce:     time.Second,
			ClipboardFallback: false,
		})
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		t.Setenv("CFERR_OUTPUT_DIR", "   ")
		t.Setenv("CFERR_PREVIEW_FILE", "")
		t.Setenv("CFERR_WATCH_DEBOUNCE", "soon")
		t.Setenv("CFERR_CLIPBOARD_FALLBACK", "maybe")

		assertCLIConfig(t, LoadCLIConfig(), CLIConfig{
			OutputDir:         defaultOutputDir,
			PreviewFile:       defaultPreviewFile,
			WatchDebounce:     defaultWatchDebounce,
			ClipboardFallback: defaultClipboardFallback,
		})
	})

	t.Run("rejects negative debounce", func(t *testing.T) {
		t.Setenv("CFERR_WATCH_DEBOUNCE", "-5ms")

		if got := LoadCLIConfig().WatchDebounce; got != defaultWatchDebounce {
			t.Errorf("WatchDebounce = %v, want %v", got, defaultWatchDebounce)
		}
	})
}

func assertCLIConfig(t *testing.T, cfg, want CLIConfig) {
	t.Helper()
	if cfg.OutputDir != want.OutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want.OutputDir)
	}
	if cfg.PreviewFile != want.PreviewFile {
		t.Errorf("PreviewFile = %q, want %q", cfg.PreviewFile, want.PreviewFile)
	}
	if cfg.WatchDebounce != want.WatchDebounce {
		t.Errorf("WatchDebounce = %v, want %v", cfg.WatchDebounce, want.WatchDebounce)
	}
	if cfg.ClipboardFallback != want.ClipboardFallback {
		t.Errorf("ClipboardFallback = %v, want %v", cfg.ClipboardFallback, want.ClipboardFallback)
	}
}
