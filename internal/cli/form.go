package cli

// This file applies user input to the config store. Sources are applied in
// order so later ones win: --form file, --set-json, then individual flags.

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"cferrpage/internal/catalog"
	"cferrpage/internal/config"
)

// formInput is bound to the form flags shared by every page command.
type formInput struct {
	file    string
	setJSON string

	code      string
	domain    string
	rayID     string
	ip        string
	timestamp string
	message   string
	location  string
}

type formFlag struct {
	name  string
	key   string
	usage string
	value *string
}

func (f *formInput) flags() []formFlag {
	return []formFlag{
		{"code", config.KeyErrorCode, "Error code, e.g. 502 (see 'codes')", &f.code},
		{"domain", config.KeyDomainName, "Domain shown on the page", &f.domain},
		{"ray-id", config.KeyRayID, "Ray ID (generated when empty)", &f.rayID},
		{"ip", config.KeyVisitorIP, "Visitor IP address", &f.ip},
		{"timestamp", config.KeyTimestamp, "Timestamp, RFC 3339 (defaults to now)", &f.timestamp},
		{"message", config.KeyCustomMessage, "Custom message shown under 'What happened?'", &f.message},
		{"location", config.KeyLocation, "Edge location name", &f.location},
	}
}

func (f *formInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "form", "", "YAML or JSON file with page fields")
	cmd.Flags().StringVar(&f.setJSON, "set-json", "", "JSON object with page fields, applied after --form")
	for _, fl := range f.flags() {
		cmd.Flags().StringVar(fl.value, fl.name, "", fl.usage)
	}
}

// apply pushes every form source into the manager's store. Only flags the
// user set on the command line are applied.
func (f *formInput) apply(cmd *cobra.Command, m *PageManager) error {
	store := m.store
	if f.file != "" {
		fields, err := loadFormFile(f.file)
		if err != nil {
			return reportError(m.printer, m.logger, err, "Failed to load form file")
		}
		store.UpdateMap(fields)
	}

	if f.setJSON != "" {
		parsed := gjson.Parse(f.setJSON)
		if !gjson.Valid(f.setJSON) || !parsed.IsObject() {
			err := newWithSentinel(ErrInvalidFormJSON, "--set-json must be a JSON object")
			return reportError(m.printer, m.logger, err, "Invalid --set-json value")
		}
		store.UpdateJSON([]byte(f.setJSON))
	}

	changed := make(map[string]any)
	for _, fl := range f.flags() {
		if !cmd.Flags().Changed(fl.name) {
			continue
		}
		if strings.ContainsAny(*fl.value, "\r\n") && fl.key != config.KeyCustomMessage {
			err := wrapWithSentinelAndContext(ErrControlCharsNotAllowed, nil,
				"--"+fl.name+" must not contain line breaks", map[string]any{"flag": fl.name})
			return reportError(m.printer, m.logger, err, "Invalid flag value")
		}
		changed[fl.key] = *fl.value
	}
	if len(changed) > 0 {
		store.UpdateMap(changed)
	}

	if cmd.Flags().Changed("code") {
		if _, ok := catalog.Lookup(f.code); !ok {
			m.printer.Warn("Unknown error code " + f.code + ", using " + catalog.DefaultCode)
		}
	}
	return nil
}

// loadFormFile decodes a YAML (or JSON) mapping. An empty file yields nil.
func loadFormFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapWithSentinelAndContext(ErrReadFormFileFailed, err,
			"failed to read form file", map[string]any{"path": path})
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, wrapWithSentinelAndContext(ErrParseFormFileFailed, err,
			"form file must contain a mapping of page fields", map[string]any{"path": path})
	}
	return m, nil
}
