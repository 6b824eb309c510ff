package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cferrpage/internal/config"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// NewConfigCmd builds the config command.
func NewConfigCmd(logger *zap.Logger) *cobra.Command {
	return NewConfigCmdWithManager(DefaultPageManager(logger))
}

// NewConfigCmdWithManager returns the config command using the provided manager.
func NewConfigCmdWithManager(mgr *PageManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect page configuration",
		Long:  "Show the normalized configuration a page would be rendered with, or the defaults",
	}

	cmd.AddCommand(mgr.newConfigShowCmd())
	cmd.AddCommand(mgr.newConfigDefaultsCmd())

	return cmd
}

func (m *PageManager) newConfigShowCmd() *cobra.Command {
	var form formInput
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the normalized configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := form.apply(cmd, m); err != nil {
				return err
			}
			return m.printConfig(m.store.Get(), format)
		},
	}

	form.register(cmd)
	cmd.Flags().StringVarP(&format, "output", "o", outputYAML, "Output format: yaml or json")

	return cmd
}

func (m *PageManager) newConfigDefaultsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show the default configuration template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.printConfig(m.store.Default(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", outputYAML, "Output format: yaml or json")

	return cmd
}

func (m *PageManager) printConfig(c config.Configuration, format string) error {
	var out string
	var err error
	switch format {
	case outputYAML:
		var b []byte
		b, err = yaml.Marshal(c)
		out = string(b)
	case outputJSON:
		out, err = configJSON(c)
		out += "\n"
	default:
		err := wrapWithSentinelAndContext(ErrInvalidOutputFormat, nil,
			fmt.Sprintf("unsupported output format %q (want yaml or json)", format),
			map[string]any{"format": format})
		return reportError(m.printer, m.logger, err, "Invalid output format")
	}
	if err != nil {
		wrappedErr := wrapWithSentinelAndContext(ErrMarshalConfigFailed, err,
			fmt.Sprintf("failed to marshal configuration: %v", err),
			map[string]any{"format": format})
		return reportError(m.printer, m.logger, wrappedErr, "Failed to marshal configuration")
	}
	m.printer.Printf("%s", out)
	return nil
}

// configJSON encodes c with keys in display order.
func configJSON(c config.Configuration) (string, error) {
	fields := []struct {
		key   string
		value string
	}{
		{config.KeyErrorCode, c.ErrorCode},
		{"errorTitle", c.ErrorTitle},
		{"errorDescription", c.ErrorDescription},
		{config.KeyDomainName, c.DomainName},
		{config.KeyRayID, c.RayID},
		{config.KeyVisitorIP, c.VisitorIP},
		{config.KeyTimestamp, c.Timestamp},
		{config.KeyCustomMessage, c.CustomMessage},
		{config.KeyLocation, c.Location},
	}
	out := "{}"
	for _, f := range fields {
		var err error
		out, err = sjson.Set(out, f.key, f.value)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}
