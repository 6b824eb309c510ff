// Package render turns a page configuration into a self-contained HTML
// document. Every interpolated value is escaped with EscapeHTML; the document
// carries its CSS in a single inline <style> block and references nothing
// external.
package render

import (
	"embed"
	"io"
	"strings"
	"text/template"
	"time"

	"cferrpage/internal/catalog"
	"cferrpage/internal/config"
	"cferrpage/internal/rayid"
	"cferrpage/pkg/errx"
)

//go:embed templates/page.html.tmpl templates/styles.css
var assets embed.FS

var (
	pageTemplate = template.Must(template.ParseFS(assets, "templates/page.html.tmpl"))
	styles       = mustReadAsset("templates/styles.css")
)

func mustReadAsset(name string) string {
	b, err := assets.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return strings.TrimRight(string(b), "\n")
}

// Stage labels.
const (
	LabelWorking = "Working"
	LabelError   = "Error"
)

type stage struct {
	Kind   string
	Name   string
	Detail string
	OK     bool
	Label  string
}

// pageView holds already escaped values. Styles is trusted static CSS.
type pageView struct {
	Code          string
	Title         string
	Domain        string
	RayID         string
	VisitorIP     string
	Location      string
	Time          string
	WhatHappened  string
	WhatCanIDo    string
	CustomMessage string
	Stages        []stage
	Styles        string
}

// Renderer generates error pages. The zero value is not usable; use New.
type Renderer struct {
	defaults config.Defaults
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock used for missing timestamps and for the time
// shown when a timestamp cannot be parsed.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.defaults.Now = now
	}
}

// WithRayIDGenerator sets the generator used when the ray id is blank.
func WithRayIDGenerator(gen rayid.Generator) Option {
	return func(r *Renderer) {
		r.defaults.RayID = gen
	}
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) now() time.Time {
	if r.defaults.Now != nil {
		return r.defaults.Now()
	}
	return time.Now()
}

// Render writes the document for c to w. c does not need to be normalized;
// blank fields get the same defaults the config store applies.
func (r *Renderer) Render(w io.Writer, c config.Configuration) error {
	if err := pageTemplate.ExecuteTemplate(w, "page", r.view(c)); err != nil {
		return errx.WrapRender("failed to render error page", err).
			WithContext("code", c.ErrorCode)
	}
	return nil
}

// GenerateHTML returns the complete document for c.
func (r *Renderer) GenerateHTML(c config.Configuration) string {
	var b strings.Builder
	// A strings.Builder never fails and the template only reads
	// fields of pageView.
	_ = r.Render(&b, c)
	return b.String()
}

// GeneratePreview returns the document shown in a live preview. It is
// identical to GenerateHTML.
func (r *Renderer) GeneratePreview(c config.Configuration) string {
	return r.GenerateHTML(c)
}

func (r *Renderer) view(c config.Configuration) pageView {
	c = config.Normalize(c, r.defaults)
	def := catalog.Resolve(c.ErrorCode)

	return pageView{
		Code:          EscapeHTML(def.Code),
		Title:         EscapeHTML(def.Title),
		Domain:        EscapeHTML(c.DomainName),
		RayID:         EscapeHTML(c.RayID),
		VisitorIP:     EscapeHTML(c.VisitorIP),
		Location:      EscapeHTML(c.Location),
		Time:          EscapeHTML(FormatTime(c.Timestamp, r.now())),
		WhatHappened:  EscapeHTML(def.WhatHappened),
		WhatCanIDo:    EscapeHTML(def.WhatCanIDo),
		CustomMessage: EscapeHTML(c.CustomMessage),
		Stages:        stages(def.Code, c),
		Styles:        styles,
	}
}

// stages builds the Browser / Cloudflare / Host diagram. Host errors put the
// failure at the origin; every other code puts it at the edge.
func stages(code string, c config.Configuration) []stage {
	hostDown := catalog.IsHostError(code)
	return []stage{
		newStage("browser", "Browser", "You", true),
		newStage("cloud", "Cloudflare", EscapeHTML(c.Location), hostDown),
		newStage("server", "Host", EscapeHTML(c.DomainName), !hostDown),
	}
}

func newStage(kind, name, detail string, ok bool) stage {
	label := LabelError
	if ok {
		label = LabelWorking
	}
	return stage{Kind: kind, Name: name, Detail: detail, OK: ok, Label: label}
}

var defaultRenderer = New()

// GenerateHTML renders c with the default Renderer.
func GenerateHTML(c config.Configuration) string {
	return defaultRenderer.GenerateHTML(c)
}

// GeneratePreview renders c with the default Renderer.
func GeneratePreview(c config.Configuration) string {
	return defaultRenderer.GeneratePreview(c)
}
