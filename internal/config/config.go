// Package config holds the error page configuration and the store that owns it.
//
// A Configuration is always normalized before it is stored: the error code is
// resolved against the catalog (unknown codes fall back to catalog.DefaultCode),
// the title and description are derived from the resolved definition, and blank
// fields receive their defaults. Generated defaults (ray id, timestamp) are
// produced once, when a value is written, and stay stable across reads.
package config

import (
	"strings"
	"time"

	"cferrpage/internal/catalog"
	"cferrpage/internal/rayid"
)

const (
	DefaultDomain    = "example.com"
	DefaultVisitorIP = "Not available"
	DefaultLocation  = "Frankfurt"

	// TimestampLayout is the serialized form of generated timestamps,
	// e.g. 2024-01-01T00:00:00.000Z.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Configuration is the full set of fields that describe one error page.
type Configuration struct {
	ErrorCode        string `json:"errorCode" yaml:"errorCode"`
	ErrorTitle       string `json:"errorTitle" yaml:"errorTitle"`
	ErrorDescription string `json:"errorDescription" yaml:"errorDescription"`
	DomainName       string `json:"domainName" yaml:"domainName"`
	RayID            string `json:"rayId" yaml:"rayId"`
	VisitorIP        string `json:"visitorIp" yaml:"visitorIp"`
	Timestamp        string `json:"timestamp" yaml:"timestamp"`
	CustomMessage    string `json:"customMessage" yaml:"customMessage"`
	Location         string `json:"location" yaml:"location"`
}

// Defaults supplies the generated values used during normalization.
// Nil fields fall back to time.Now and rayid.Generate.
type Defaults struct {
	Now   func() time.Time
	RayID rayid.Generator
}

func (d Defaults) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Defaults) rayID() string {
	if d.RayID != nil {
		return d.RayID()
	}
	return rayid.Generate()
}

// DefaultTemplate returns the un-normalized default configuration.
func DefaultTemplate() Configuration {
	def := catalog.Default()
	return Configuration{
		ErrorCode:        def.Code,
		ErrorTitle:       def.Title,
		ErrorDescription: def.Description,
		DomainName:       DefaultDomain,
		Location:         DefaultLocation,
	}
}

// Normalize applies the defaulting rules to c and returns the result.
// CustomMessage is never defaulted.
func Normalize(c Configuration, d Defaults) Configuration {
	def := catalog.Resolve(c.ErrorCode)
	c.ErrorCode = def.Code
	c.ErrorTitle = def.Title
	c.ErrorDescription = def.Description

	if isBlank(c.DomainName) {
		c.DomainName = DefaultDomain
	}
	if isBlank(c.RayID) {
		c.RayID = d.rayID()
	}
	if isBlank(c.VisitorIP) {
		c.VisitorIP = DefaultVisitorIP
	}
	if isBlank(c.Timestamp) {
		c.Timestamp = FormatTimestamp(d.now())
	}
	if isBlank(c.Location) {
		c.Location = DefaultLocation
	}
	return c
}

// FormatTimestamp serializes t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
