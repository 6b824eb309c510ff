package errx

import "errors"

// Error is the base error type for the generator.
// Values are immutable: the With* methods return modified copies.
type Error struct {
	code        string
	description string
	message     string
	context     map[string]any
	cause       error
	base        error
}

// New creates a new Error with the provided code, description, and message.
func New(code, description, message string) *Error {
	return &Error{
		code:        code,
		description: description,
		message:     message,
	}
}

// Wrap creates a new Error and attaches a cause error.
func Wrap(code, description, message string, cause error) *Error {
	e := New(code, description, message)
	e.cause = cause
	return e
}

// Error implements the error interface.
// It prefers the message, then the description, then the code.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.message != "":
		return e.message
	case e.description != "":
		return e.description
	case e.code != "":
		return e.code
	}
	return "error"
}

// Unwrap returns the direct cause, not the base sentinel.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is lets errors.Is match the base sentinel as well as anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if e.base != nil && errors.Is(e.base, target) {
		return true
	}
	return errors.Is(e.cause, target)
}

// Code returns the stable error code.
func (e *Error) Code() string {
	if e == nil {
		return ""
	}
	return e.code
}

// Description returns the category description.
func (e *Error) Description() string {
	if e == nil {
		return ""
	}
	return e.description
}

// Message returns the user-facing message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Context returns a copy of the structured context.
func (e *Error) Context() map[string]any {
	if e == nil || len(e.context) == 0 {
		return nil
	}
	return cloneContext(e.context)
}

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Base returns the sentinel base error, if any.
func (e *Error) Base() error {
	if e == nil {
		return nil
	}
	return e.base
}

// WithContext returns a copy of e with key set to value.
func (e *Error) WithContext(key string, value any) *Error {
	if e == nil {
		return nil
	}
	c := e.clone()
	if c.context == nil {
		c.context = make(map[string]any, 1)
	}
	c.context[key] = value
	return c
}

// WithContextMap returns a copy of e with ctx merged into its context.
// A copy is returned even when ctx is empty.
func (e *Error) WithContextMap(ctx map[string]any) *Error {
	if e == nil {
		return nil
	}
	c := e.clone()
	if len(ctx) == 0 {
		return c
	}
	if c.context == nil {
		c.context = make(map[string]any, len(ctx))
	}
	for key, value := range ctx {
		c.context[key] = value
	}
	return c
}

// WithBase returns a copy of e whose base sentinel is base.
func (e *Error) WithBase(base error) *Error {
	if e == nil {
		return nil
	}
	c := e.clone()
	c.base = base
	return c
}

func (e *Error) clone() *Error {
	c := *e
	if e.context != nil {
		c.context = cloneContext(e.context)
	}
	return &c
}

func cloneContext(ctx map[string]any) map[string]any {
	clone := make(map[string]any, len(ctx))
	for key, value := range ctx {
		clone[key] = value
	}
	return clone
}
