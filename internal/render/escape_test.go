package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"script tag", `<script>alert("xss")</script>`, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"single quote", "it's", "it&#039;s"},
		{"already escaped", "&amp;", "&amp;amp;"},
		{"plain", "example.com", "example.com"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestEscapeValue(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt;", EscapeValue("a <b>"))
	assert.Equal(t, "", EscapeValue(nil))
	assert.Equal(t, "", EscapeValue(42))
	assert.Equal(t, "", EscapeValue([]string{"<"}))
}
