package errx

// CreateByCode creates an Error using the provided code, description, and message.
// A non-nil cause is attached with Wrap.
func CreateByCode(code, description, message string, cause error) *Error {
	if cause != nil {
		return Wrap(code, description, message, cause)
	}
	return New(code, description, message)
}

// FromSentinel creates an Error whose category is looked up from a sentinel error.
// Unknown sentinels fall back to the CLI category. The sentinel becomes the base
// so errors.Is keeps matching it.
func FromSentinel(sentinel error, lookup func(error) (code, description string), message string, cause error) *Error {
	code, desc := lookup(sentinel)
	if code == "" {
		code = CodeCLI
		desc = DescCLI
	}
	return CreateByCode(code, desc, message, cause).WithBase(sentinel)
}

// CLI creates a CLI/argument validation error with code 70000.
func CLI(message string) *Error {
	return New(CodeCLI, DescCLI, message)
}

// WrapCLI wraps a cause with a CLI/argument validation error.
func WrapCLI(message string, cause error) *Error {
	return Wrap(CodeCLI, DescCLI, message, cause)
}

// Config creates a configuration store error.
// The store uses it for programming errors such as registering a nil listener.
func Config(message string) *Error {
	return New(CodeConfig, DescConfig, message)
}

// WrapConfig wraps a cause with a configuration store error.
func WrapConfig(message string, cause error) *Error {
	return Wrap(CodeConfig, DescConfig, message, cause)
}

// Export creates an export/download error.
func Export(message string) *Error {
	return New(CodeExport, DescExport, message)
}

// WrapExport wraps a cause with an export/download error.
func WrapExport(message string, cause error) *Error {
	return Wrap(CodeExport, DescExport, message, cause)
}

// WrapClipboard wraps a cause with a clipboard error.
func WrapClipboard(message string, cause error) *Error {
	return Wrap(CodeClipboard, DescClipboard, message, cause)
}

// WrapForm wraps a cause with a form input error.
func WrapForm(message string, cause error) *Error {
	return Wrap(CodeForm, DescForm, message, cause)
}

// WrapRender wraps a cause with a render error.
func WrapRender(message string, cause error) *Error {
	return Wrap(CodeRender, DescRender, message, cause)
}

// WrapPreview wraps a cause with a preview/watch error.
func WrapPreview(message string, cause error) *Error {
	return Wrap(CodePreview, DescPreview, message, cause)
}

// Clipboard creates a clipboard error.
func Clipboard(message string) *Error {
	return New(CodeClipboard, DescClipboard, message)
}
