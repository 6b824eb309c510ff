// Package catalog is the static table of CDN error codes shown on generated pages.
package catalog

import "strings"

// DefaultCode is used whenever a requested code is not in the table.
const DefaultCode = "522"

// Definition describes one error code. Values are immutable.
type Definition struct {
	Code         string `json:"code" yaml:"code"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	WhatHappened string `json:"whatHappened" yaml:"whatHappened"`
	WhatCanIDo   string `json:"whatCanIDo" yaml:"whatCanIDo"`
}

var definitions = []Definition{
	{
		Code:         "500",
		Title:        "Internal Server Error",
		Description:  "The server encountered an internal error.",
		WhatHappened: "The origin web server encountered an unexpected condition that prevented it from fulfilling the request.",
		WhatCanIDo:   "Please try again in a few minutes. If you are the site owner, check your server logs for more details.",
	},
	{
		Code:         "502",
		Title:        "Bad Gateway",
		Description:  "The server received an invalid response from the upstream server.",
		WhatHappened: "The origin web server is not reachable. Cloudflare could not establish a connection to the origin server.",
		WhatCanIDo:   "Please try again in a few minutes. If you are the site owner, check that your origin server is running and accessible.",
	},
	{
		Code:         "503",
		Title:        "Service Temporarily Unavailable",
		Description:  "The server is temporarily unable to handle the request.",
		WhatHappened: "The origin web server is refusing connections. The server may be overloaded or down for maintenance.",
		WhatCanIDo:   "Please try again in a few minutes. If you are the site owner, check your server status and capacity.",
	},
	{
		Code:         "504",
		Title:        "Gateway Timeout",
		Description:  "The server did not receive a timely response from the upstream server.",
		WhatHappened: "The origin web server timed out. Cloudflare was unable to get a response within the time limit.",
		WhatCanIDo:   "Please try again in a few minutes. If you are the site owner, check your server performance and timeout settings.",
	},
	{
		Code:         "520",
		Title:        "Web Server Returned an Unknown Error",
		Description:  "The origin server returned an empty, unknown, or unexpected response.",
		WhatHappened: "The origin web server returned an empty, unknown, or unexpected response to Cloudflare.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, check your origin server logs for errors.",
	},
	{
		Code:         "521",
		Title:        "Web Server Is Down",
		Description:  "The origin server has refused the connection from Cloudflare.",
		WhatHappened: "The origin web server is down or not responding. Cloudflare cannot establish a connection.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, ensure your web server is running and accepting connections.",
	},
	{
		Code:         "522",
		Title:        "Connection Timed Out",
		Description:  "Cloudflare could not negotiate a TCP handshake with the origin server.",
		WhatHappened: "The connection to the origin web server timed out. Cloudflare could not complete a TCP handshake.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, check your firewall settings and server availability.",
	},
	{
		Code:         "523",
		Title:        "Origin Is Unreachable",
		Description:  "Cloudflare could not reach the origin server.",
		WhatHappened: "The origin web server is unreachable. This could be a DNS issue or the server IP is incorrect.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, verify your DNS settings and origin IP address.",
	},
	{
		Code:         "524",
		Title:        "A Timeout Occurred",
		Description:  "Cloudflare was able to connect but the origin did not respond in time.",
		WhatHappened: "The origin web server acknowledged the connection but did not respond with data in time.",
		WhatCanIDo:   "Please try again. If you are the site owner, check your server performance and increase timeout limits if needed.",
	},
	{
		Code:         "525",
		Title:        "SSL Handshake Failed",
		Description:  "Cloudflare could not negotiate an SSL/TLS handshake with the origin server.",
		WhatHappened: "The SSL/TLS handshake between Cloudflare and the origin web server failed.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, check your SSL certificate configuration.",
	},
	{
		Code:         "526",
		Title:        "Invalid SSL Certificate",
		Description:  "Cloudflare could not validate the SSL certificate on the origin server.",
		WhatHappened: "The origin web server has an invalid or expired SSL certificate.",
		WhatCanIDo:   "Contact your hosting provider. If you are the site owner, install a valid SSL certificate on your origin server.",
	},
	{
		Code:         "527",
		Title:        "Railgun Error",
		Description:  "The request timed out or failed after the WAN connection was established.",
		WhatHappened: "The Railgun connection between Cloudflare and the origin server encountered an error.",
		WhatCanIDo:   "Please try again. If you are the site owner, check your Railgun configuration and server status.",
	},
}

var byCode = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		m[def.Code] = def
	}
	return m
}()

// hostErrors are failures between the edge and the origin host. The status
// diagram marks the host as failing for these and the edge for everything else.
var hostErrors = map[string]struct{}{
	"502": {}, "503": {}, "504": {},
	"520": {}, "521": {}, "522": {}, "523": {}, "524": {}, "525": {}, "526": {},
}

// Lookup returns the definition for code.
func Lookup(code string) (Definition, bool) {
	def, ok := byCode[strings.TrimSpace(code)]
	return def, ok
}

// Resolve returns the definition for code, or the DefaultCode definition when
// code is unknown.
func Resolve(code string) Definition {
	if def, ok := Lookup(code); ok {
		return def
	}
	return Default()
}

// Default returns the DefaultCode definition.
func Default() Definition {
	return byCode[DefaultCode]
}

// Codes lists every code in table order.
func Codes() []string {
	codes := make([]string, len(definitions))
	for i, def := range definitions {
		codes[i] = def.Code
	}
	return codes
}

// All returns a copy of the table.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// IsHostError reports whether code is an upstream/host failure.
func IsHostError(code string) bool {
	_, ok := hostErrors[strings.TrimSpace(code)]
	return ok
}
