package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five HTML-significant characters with entities so
// that s is safe in both text and quoted attribute context.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeValue escapes v when it is a string. Any other value escapes to "".
func EscapeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return EscapeHTML(s)
}
