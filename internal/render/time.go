package render

import (
	"strings"
	"time"

	"cferrpage/internal/config"
)

// DisplayTimeLayout is the wall-clock format shown in the page footer.
const DisplayTimeLayout = "15:04:05 UTC"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	config.TimestampLayout,
	"2006-01-02 15:04:05",
}

// FormatTime renders ts as a UTC wall-clock time. Input that does not parse
// falls back to now.
func FormatTime(ts string, now time.Time) string {
	ts = strings.TrimSpace(ts)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UTC().Format(DisplayTimeLayout)
		}
	}
	return now.UTC().Format(DisplayTimeLayout)
}
