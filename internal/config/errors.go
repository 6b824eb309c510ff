package config

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"cferrpage/pkg/errx"
)

// ErrNilListener is returned by Store.OnChange for a nil listener.
var ErrNilListener = errx.Config("config change listener must not be nil")

// listenerError converts a recovered panic value into an errx config error.
func listenerError(id uint64, recovered any) error {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return errx.WrapConfig("config change listener failed", cause).
		WithContext("listener", id)
}

// logListenerError logs err with structured fields:
//   - error.code: "71000"
//   - error.category: "Configuration store error"
//   - error.message: "config change listener failed"
//   - error.context.listener: subscription id
//
// Errors that are not errx errors are logged as-is.
func logListenerError(logger logr.Logger, err error, msg string) {
	if err == nil {
		return
	}

	var errxErr *errx.Error
	if !errors.As(err, &errxErr) {
		logger.Error(err, msg)
		return
	}

	keysAndValues := []any{
		"error.code", errxErr.Code(),
		"error.category", errxErr.Description(),
		"error.message", errxErr.Message(),
	}
	for key, value := range errxErr.Context() {
		keysAndValues = append(keysAndValues, "error.context."+key, value)
	}
	if cause := errxErr.Cause(); cause != nil {
		keysAndValues = append(keysAndValues, "error.cause", cause.Error())
	}
	logger.Error(err, msg, keysAndValues...)
}
