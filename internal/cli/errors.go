package cli

// This file defines error handling utilities for the CLI, including:
//   - Sentinel errors for each error category (CLI, Form, Export, Clipboard, Preview, ...)
//   - Error wrapping functions that integrate with the errx error system
//   - Structured error logging with context
//   - Debug mode management for error output

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"cferrpage/pkg/errx"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

type errorSpec struct {
	code        string
	description string
}

// newSentinelError creates a sentinel error and registers it in errorSpecs in one step.
func newSentinelError(msg string, code, description string) error {
	err := errors.New(msg)
	errorSpecs[err] = errorSpec{code: code, description: description}
	return err
}

// errorSpecs maps sentinel errors to their error codes and descriptions.
// Must be declared before the sentinel errors so it is initialized first.
var errorSpecs = make(map[error]errorSpec)

// lookupSpec provides a lookup function for errx.FromSentinel.
func lookupSpec(sentinel error) (code, description string) {
	spec := specFor(sentinel)
	return spec.code, spec.description
}

// newWithSentinel creates a new error categorized by the sentinel base.
func newWithSentinel(base error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, nil)
	}
	return errx.FromSentinel(base, lookupSpec, msg, nil)
}

// wrapWithSentinel wraps a cause error categorized by the sentinel base.
func wrapWithSentinel(base, cause error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, cause)
	}
	return errx.FromSentinel(base, lookupSpec, msg, cause)
}

// wrapWithSentinelAndContext wraps an error with additional structured context,
// such as file paths or error codes.
func wrapWithSentinelAndContext(base, cause error, msg string, context map[string]any) error {
	err := wrapWithSentinel(base, cause, msg)
	if errxErr, ok := err.(*errx.Error); ok && len(context) > 0 {
		return errxErr.WithContextMap(context)
	}
	return err
}

// Sentinel errors for CLI operations.
var (
	// CLI errors.
	ErrInvalidOutputFormat    = newSentinelError("invalid output format", errx.CodeCLI, errx.DescCLI)
	ErrInvalidRayID           = newSentinelError("invalid ray id", errx.CodeCLI, errx.DescCLI)
	ErrControlCharsNotAllowed = newSentinelError("value must not contain control characters", errx.CodeCLI, errx.DescCLI)
	ErrWatchRequiresForm      = newSentinelError("--watch requires --form", errx.CodeCLI, errx.DescCLI)
	ErrUnknownFailureCode     = newSentinelError("unknown failure code", errx.CodeCLI, errx.DescCLI)

	// Catalog errors.
	ErrUnknownErrorCode = newSentinelError("unknown error code", errx.CodeCatalog, errx.DescCatalog)

	// Form errors.
	ErrReadFormFileFailed  = newSentinelError("failed to read form file", errx.CodeForm, errx.DescForm)
	ErrParseFormFileFailed = newSentinelError("failed to parse form file", errx.CodeForm, errx.DescForm)
	ErrInvalidFormJSON     = newSentinelError("--set-json must be a JSON object", errx.CodeForm, errx.DescForm)

	// Render errors.
	ErrRenderFailed = newSentinelError("failed to render error page", errx.CodeRender, errx.DescRender)

	// Export errors.
	ErrSavePageFailed      = newSentinelError("failed to save error page", errx.CodeExport, errx.DescExport)
	ErrMarshalConfigFailed = newSentinelError("failed to marshal configuration", errx.CodeExport, errx.DescExport)

	// Clipboard errors.
	ErrClipboardCopyFailed = newSentinelError("failed to copy to clipboard", errx.CodeClipboard, errx.DescClipboard)

	// Preview errors.
	ErrWritePreviewFailed = newSentinelError("failed to write preview", errx.CodePreview, errx.DescPreview)
	ErrWatchFormFailed    = newSentinelError("failed to watch form file", errx.CodePreview, errx.DescPreview)
	ErrOpenPreviewFailed  = newSentinelError("failed to open preview", errx.CodePreview, errx.DescPreview)
)

func specFor(base error) errorSpec {
	spec, ok := errorSpecs[base]
	if ok {
		return spec
	}
	return errorSpec{code: errx.CodeCLI, description: errx.DescCLI}
}

// logStructuredError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag).
//
// This extracts all context from errx.Error and logs it with structured fields:
// - error.code: "74000"
// - error.category: "Export error"
// - error.context.path: "out/cloudflare-error-502.html"
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var errxErr *errx.Error
	if errors.As(err, &errxErr) {
		fields := []zap.Field{
			zap.String("error.code", errxErr.Code()),
			zap.String("error.category", errxErr.Description()),
			zap.String("error.message", errxErr.Message()),
			zap.Error(err),
		}

		for key, value := range errxErr.Context() {
			fields = append(fields, zap.Any("error.context."+key, value))
		}

		// Distinct field name so it does not collide with "error".
		if cause := errxErr.Cause(); cause != nil {
			fields = append(fields, zap.NamedError("error.cause", cause))
		}

		logger.Error(msg, fields...)
	} else {
		logger.Error(msg, zap.Error(err))
	}
}

// reportError shows msg as an error notification, logs err in debug mode and
// returns err.
func reportError(p *Printer, logger *zap.Logger, err error, msg string) error {
	p.Error(msg)
	logStructuredError(logger, err, msg)
	return err
}
