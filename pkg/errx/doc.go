// Package errx provides structured, code-based errors for the error page generator.
//
// Every error carries:
//   - A stable 5-digit error code (e.g., "74000" for export errors)
//   - A category description (e.g., "Export error")
//   - A user-facing message
//   - Optional structured context (key-value pairs)
//   - Optional cause and base sentinel errors
//
// The first two digits of a code name the component:
//   - 70xxx: CLI/argument validation errors
//   - 71xxx: Configuration store errors
//   - 72xxx: Error catalog errors
//   - 73xxx: Document rendering errors
//   - 74xxx: Export/download errors
//   - 75xxx: Clipboard errors
//   - 76xxx: Form input errors
//   - 77xxx: Preview/watch errors
//
// The last three digits are reserved for subcodes.
//
// Example usage:
//
//	err := errx.WrapExport("failed to save page", writeErr).
//		WithContext("file", "cloudflare-error-502.html").
//		WithBase(sentinelErr)
//
//	if errors.Is(err, sentinelErr) {
//		// Handle specific error
//	}
//
//	fmt.Println(errx.UserString(err))  // User-friendly message
//	fmt.Println(errx.DebugString(err)) // Full debug details
package errx
