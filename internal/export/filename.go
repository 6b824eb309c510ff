// Package export delivers rendered pages: it names them, saves them to disk
// and puts them on the clipboard.
package export

import "strings"

const (
	filenamePrefix = "cloudflare-error-"
	filenameExt    = ".html"
)

// Filename returns the download name for an error code,
// e.g. cloudflare-error-502.html.
func Filename(code string) string {
	return filenamePrefix + strings.TrimSpace(code) + filenameExt
}
