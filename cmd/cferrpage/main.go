package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cferrpage/internal/cli"
	"cferrpage/pkg/errx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false
	quiet   = false
)

// logLevel is raised to Debug by --debug once flags are parsed.
var logLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)

func main() {
	logger, err := newConsoleLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		if debug {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errx.DebugString(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errx.UserString(err))
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cferrpage",
	Short: "Cloudflare-style error page generator",
	Long: `cferrpage generates self-contained Cloudflare-style error pages:
- Render pages for 5xx error codes with custom domain, ray id and message
- Export them as cloudflare-error-<code>.html or copy them to the clipboard
- Keep a live preview in sync with a form file`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally so logStructuredError can check it
		cli.SetDebugMode(debug)
		if debug {
			logLevel.SetLevel(zap.DebugLevel)
		}
		cli.ConfigureOutput(quiet, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug mode with structured error logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress notifications")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewGenerateCmd(logger))
	rootCmd.AddCommand(cli.NewExportCmd(logger))
	rootCmd.AddCommand(cli.NewCopyCmd(logger))
	rootCmd.AddCommand(cli.NewPreviewCmd(logger))
	rootCmd.AddCommand(cli.NewCodesCmd(logger))
	rootCmd.AddCommand(cli.NewFailuresCmd(logger))
	rootCmd.AddCommand(cli.NewRayIDCmd(logger))
	rootCmd.AddCommand(cli.NewConfigCmd(logger))
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// The level starts at Error so structured error logs show in debug mode; with
// debug it starts at Debug.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if debug {
		logLevel.SetLevel(zap.DebugLevel)
	}
	cfg.Level = logLevel
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	// stdout carries page and data output.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
