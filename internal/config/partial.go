package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// Field keys accepted by the loosely typed update entry points.
const (
	KeyErrorCode     = "errorCode"
	KeyDomainName    = "domainName"
	KeyRayID         = "rayId"
	KeyVisitorIP     = "visitorIp"
	KeyTimestamp     = "timestamp"
	KeyCustomMessage = "customMessage"
	KeyLocation      = "location"
)

// Partial is a subset of Configuration fields. A nil field is left unchanged
// by an update; a pointer to "" clears the field so that it is defaulted again.
// The error title and description are derived and cannot be set.
type Partial struct {
	ErrorCode     *string
	DomainName    *string
	RayID         *string
	VisitorIP     *string
	Timestamp     *string
	CustomMessage *string
	Location      *string
}

// String returns a pointer to s, for building a Partial inline.
func String(s string) *string { return &s }

// IsEmpty reports whether p sets no field.
func (p *Partial) IsEmpty() bool {
	return p == nil || (p.ErrorCode == nil && p.DomainName == nil && p.RayID == nil &&
		p.VisitorIP == nil && p.Timestamp == nil && p.CustomMessage == nil && p.Location == nil)
}

func (p *Partial) apply(c Configuration) Configuration {
	if p == nil {
		return c
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.ErrorCode, p.ErrorCode)
	set(&c.DomainName, p.DomainName)
	set(&c.RayID, p.RayID)
	set(&c.VisitorIP, p.VisitorIP)
	set(&c.Timestamp, p.Timestamp)
	set(&c.CustomMessage, p.CustomMessage)
	set(&c.Location, p.Location)
	return c
}

func (p *Partial) field(key string) **string {
	switch key {
	case KeyErrorCode:
		return &p.ErrorCode
	case KeyDomainName:
		return &p.DomainName
	case KeyRayID:
		return &p.RayID
	case KeyVisitorIP:
		return &p.VisitorIP
	case KeyTimestamp:
		return &p.Timestamp
	case KeyCustomMessage:
		return &p.CustomMessage
	case KeyLocation:
		return &p.Location
	}
	return nil
}

// PartialFromMap converts a decoded mapping (for example a YAML form file)
// into a Partial. It returns false when m is nil. Unknown keys and values
// that are not scalars are ignored; numbers and booleans are converted to
// their string form and nil clears the field.
func PartialFromMap(m map[string]any) (*Partial, bool) {
	if m == nil {
		return nil, false
	}
	p := &Partial{}
	for key, raw := range m {
		dst := p.field(key)
		if dst == nil {
			continue
		}
		if s, ok := scalarString(raw); ok {
			*dst = &s
		}
	}
	return p, true
}

// PartialFromJSON parses a JSON object into a Partial. Anything that is not a
// valid JSON object (arrays, scalars, malformed input) yields false.
func PartialFromJSON(data []byte) (*Partial, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return nil, false
	}
	p := &Partial{}
	obj.ForEach(func(key, value gjson.Result) bool {
		dst := p.field(key.String())
		if dst == nil {
			return true
		}
		switch value.Type {
		case gjson.String:
			s := value.String()
			*dst = &s
		case gjson.Number, gjson.True, gjson.False:
			s := value.Raw
			*dst = &s
		case gjson.Null:
			s := ""
			*dst = &s
		}
		return true
	})
	return p, true
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case time.Time:
		return FormatTimestamp(t), true
	}
	return "", false
}
