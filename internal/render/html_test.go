package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cferrpage/internal/catalog"
	"cferrpage/internal/config"
	"cferrpage/pkg/errx"
)

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestRenderer() *Renderer {
	return New(
		WithClock(func() time.Time { return testNow }),
		WithRayIDGenerator(func() string { return "feedfacecafebeef" }),
	)
}

func fullConfig() config.Configuration {
	return config.Configuration{
		ErrorCode:     "502",
		DomainName:    "mysite.com",
		RayID:         "0123456789abcdef",
		VisitorIP:     "192.0.2.10",
		Timestamp:     "2024-03-04T05:06:07.000Z",
		CustomMessage: "Back soon",
		Location:      "Tokyo",
	}
}

func TestGenerateHTML_Document(t *testing.T) {
	html := newTestRenderer().GenerateHTML(fullConfig())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>502: Bad Gateway | mysite.com</title>")
	assert.Contains(t, html, `<div class="cf-error-code">502</div>`)
	assert.Contains(t, html, "Bad Gateway")
	assert.Contains(t, html, "What happened?")
	assert.Contains(t, html, "What can I do?")
	assert.Contains(t, html, catalog.Resolve("502").WhatHappened)
	assert.Contains(t, html, catalog.Resolve("502").WhatCanIDo)
	assert.Contains(t, html, "Ray ID:")
	assert.Contains(t, html, "0123456789abcdef")
	assert.Contains(t, html, "Your IP: 192.0.2.10")
	assert.Contains(t, html, "Tokyo")
	assert.Contains(t, html, "05:06:07 UTC")
	assert.Contains(t, html, "<svg")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(html), "</html>"))
}

func TestGenerateHTML_Branding(t *testing.T) {
	html := GenerateHTML(config.Configuration{ErrorCode: "522"})

	assert.Contains(t, html, "#f38020")
	assert.Contains(t, html, "Browser")
	assert.Contains(t, html, "Cloudflare")
	assert.Contains(t, html, "Host")
}

func TestGenerateHTML_SelfContained(t *testing.T) {
	r := newTestRenderer()
	linkRe := regexp.MustCompile(`(?i)<link[^>]*rel=["']?stylesheet`)
	scriptSrcRe := regexp.MustCompile(`(?i)<script[^>]*src=`)

	for _, code := range catalog.Codes() {
		c := fullConfig()
		c.ErrorCode = code
		html := r.GenerateHTML(c)

		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"), code)
		assert.Equal(t, 1, strings.Count(html, "<style>"), code)
		assert.Equal(t, 1, strings.Count(html, "</style>"), code)
		assert.False(t, linkRe.MatchString(html), code)
		assert.False(t, scriptSrcRe.MatchString(html), code)
		assert.NotContains(t, html, "<script", code)
	}
}

func TestGenerateHTML_EscapesUserInput(t *testing.T) {
	c := fullConfig()
	c.DomainName = `<script>alert("xss")</script>`
	c.CustomMessage = `<img src=x onerror='alert(1)'> & more`
	c.Location = "<b>Paris</b>"
	c.RayID = `"><script>`
	c.VisitorIP = "<i>ip</i>"

	html := newTestRenderer().GenerateHTML(c)

	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "<b>Paris")
	assert.NotContains(t, html, "<i>ip")
	assert.Contains(t, html, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;")
	assert.Contains(t, html, "&lt;img src=x onerror=&#039;alert(1)&#039;&gt; &amp; more")
	assert.Contains(t, html, "&lt;b&gt;Paris&lt;/b&gt;")
	assert.Contains(t, html, "&quot;&gt;&lt;script&gt;")
	assert.Contains(t, html, "&lt;i&gt;ip&lt;/i&gt;")
}

func TestGenerateHTML_FieldPropagation(t *testing.T) {
	r := newTestRenderer()
	for _, tt := range []struct{ domain, message string }{
		{"mysite.com", "Server maintenance in progress"},
		{"shop.example.org", "We will be back at noon"},
		{"a.b.c.d.example", "x"},
	} {
		c := fullConfig()
		c.DomainName = tt.domain
		c.CustomMessage = tt.message
		html := r.GenerateHTML(c)

		assert.Contains(t, html, tt.domain)
		assert.Contains(t, html, `<div class="cf-custom-message">`+tt.message+`</div>`)
	}
}

func TestGenerateHTML_CustomMessageOptional(t *testing.T) {
	c := fullConfig()
	c.CustomMessage = ""
	html := newTestRenderer().GenerateHTML(c)

	assert.NotContains(t, html, `class="cf-custom-message"`)
}

func TestGenerateHTML_StatusDiagram(t *testing.T) {
	r := newTestRenderer()
	stageLabels := regexp.MustCompile(`cf-status-item (cf-status-ok|cf-status-error)`)

	tests := []struct {
		code string
		want []string
	}{
		{"502", []string{"cf-status-ok", "cf-status-ok", "cf-status-error"}},
		{"522", []string{"cf-status-ok", "cf-status-ok", "cf-status-error"}},
		{"526", []string{"cf-status-ok", "cf-status-ok", "cf-status-error"}},
		{"500", []string{"cf-status-ok", "cf-status-error", "cf-status-ok"}},
		{"527", []string{"cf-status-ok", "cf-status-error", "cf-status-ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c := fullConfig()
			c.ErrorCode = tt.code
			html := r.GenerateHTML(c)

			var got []string
			for _, m := range stageLabels.FindAllStringSubmatch(html, -1) {
				got = append(got, m[1])
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 2, strings.Count(html, ">"+LabelWorking+"<"))
			assert.Equal(t, 1, strings.Count(html, ">"+LabelError+"<"))
		})
	}
}

func TestGenerateHTML_Defaults(t *testing.T) {
	html := newTestRenderer().GenerateHTML(config.Configuration{})

	assert.Contains(t, html, "<title>522: Connection Timed Out | example.com</title>")
	assert.Contains(t, html, "feedfacecafebeef")
	assert.Contains(t, html, "Your IP: "+config.DefaultVisitorIP)
	assert.Contains(t, html, config.DefaultLocation)
	assert.Contains(t, html, "03:04:05 UTC")
}

func TestGenerateHTML_UnknownCodeFallsBack(t *testing.T) {
	c := fullConfig()
	c.ErrorCode = "999"
	html := newTestRenderer().GenerateHTML(c)

	assert.Contains(t, html, `<div class="cf-error-code">522</div>`)
	assert.Contains(t, html, "Connection Timed Out")
	assert.NotContains(t, html, "999")
}

func TestGenerateHTML_MalformedTimestampUsesClock(t *testing.T) {
	c := fullConfig()
	c.Timestamp = "not a time"
	html := newTestRenderer().GenerateHTML(c)

	assert.Contains(t, html, "03:04:05 UTC")
}

func TestGenerateHTML_Deterministic(t *testing.T) {
	c := fullConfig()
	first := New().GenerateHTML(c)
	second := New().GenerateHTML(c)

	assert.Equal(t, first, second)
}

func TestGeneratePreview_MatchesGenerateHTML(t *testing.T) {
	r := newTestRenderer()
	for _, code := range catalog.Codes() {
		c := fullConfig()
		c.ErrorCode = code
		assert.Equal(t, r.GenerateHTML(c), r.GeneratePreview(c), code)
	}
	assert.Equal(t, GenerateHTML(fullConfig()), GeneratePreview(fullConfig()))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender(t *testing.T) {
	t.Run("writes document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestRenderer().Render(&buf, fullConfig()))
		assert.Equal(t, newTestRenderer().GenerateHTML(fullConfig()), buf.String())
	})

	t.Run("wraps write errors", func(t *testing.T) {
		err := newTestRenderer().Render(failingWriter{}, fullConfig())
		require.Error(t, err)

		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errx.CodeRender, e.Code())
		assert.Equal(t, "502", e.Context()["code"])
	})
}

func BenchmarkGenerateHTML(b *testing.B) {
	r := newTestRenderer()
	c := fullConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.GenerateHTML(c)
	}
}
