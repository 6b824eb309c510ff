package cli

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultOutputDir         = "."
	defaultPreviewFile       = "cferrpage-preview.html"
	defaultWatchDebounce     = 150 * time.Millisecond
	defaultClipboardFallback = true
	clipboardTimeout         = 5 * time.Second
)

// CLIConfig holds runtime settings read from the environment.
type CLIConfig struct {
	// OutputDir is where export writes pages (CFERR_OUTPUT_DIR).
	OutputDir string
	// PreviewFile is the default preview path (CFERR_PREVIEW_FILE).
	PreviewFile string
	// WatchDebounce coalesces form file events in preview --watch (CFERR_WATCH_DEBOUNCE).
	WatchDebounce time.Duration
	// ClipboardFallback enables the OSC 52 terminal fallback (CFERR_CLIPBOARD_FALLBACK).
	ClipboardFallback bool
}

// DefaultCLIConfig is loaded once at startup.
var DefaultCLIConfig = LoadCLIConfig()

// LoadCLIConfig reads CLIConfig from the environment. Missing or invalid
// values fall back to defaults.
func LoadCLIConfig() CLIConfig {
	return CLIConfig{
		OutputDir:         getEnvString("CFERR_OUTPUT_DIR", defaultOutputDir),
		PreviewFile:       getEnvString("CFERR_PREVIEW_FILE", defaultPreviewFile),
		WatchDebounce:     getEnvDuration("CFERR_WATCH_DEBOUNCE", defaultWatchDebounce),
		ClipboardFallback: getEnvBool("CFERR_CLIPBOARD_FALLBACK", defaultClipboardFallback),
	}
}

func getEnvString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
