package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cferrpage/internal/catalog"
	"cferrpage/internal/rayid"
	"cferrpage/pkg/errx"
)

// NewCodesCmd builds the codes command listing the known error codes.
func NewCodesCmd(logger *zap.Logger) *cobra.Command {
	return NewCodesCmdWithPrinter(DefaultPrinter, logger)
}

// NewCodesCmdWithPrinter returns the codes command writing to p.
func NewCodesCmdWithPrinter(p *Printer, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "codes [code]",
		Short: "List error codes, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				p.Table(codesTable())
				return nil
			}
			def, ok := catalog.Lookup(args[0])
			if !ok {
				err := wrapWithSentinelAndContext(ErrUnknownErrorCode, nil,
					"unknown error code: "+args[0], map[string]any{"code": args[0]})
				return reportError(p, logger, err, "Unknown error code")
			}
			p.Section(def.Code + ": " + def.Title)
			p.TableBoxed([][]string{
				{"Field", "Value"},
				{"Description", def.Description},
				{"What happened?", def.WhatHappened},
				{"What can I do?", def.WhatCanIDo},
				{"Host error", hostLabel(def.Code)},
			})
			return nil
		},
	}
}

func hostLabel(code string) string {
	if catalog.IsHostError(code) {
		return Red("yes")
	}
	return Green("no")
}

func codesTable() [][]string {
	rows := [][]string{{"Code", "Title", "Host error"}}
	for _, def := range catalog.All() {
		host := "no"
		if catalog.IsHostError(def.Code) {
			host = "yes"
		}
		rows = append(rows, []string{def.Code, def.Title, host})
	}
	return rows
}

// NewRayIDCmd builds the rayid command.
func NewRayIDCmd(logger *zap.Logger) *cobra.Command {
	return NewRayIDCmdWithPrinter(DefaultPrinter, logger)
}

// NewRayIDCmdWithPrinter returns the rayid command writing to p.
func NewRayIDCmdWithPrinter(p *Printer, logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rayid",
		Short: "Generate a ray id",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p.Println(rayid.Generate())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <id>",
		Short: "Check that a ray id is 16 hex characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rayid.Validate(args[0]) {
				err := wrapWithSentinelAndContext(ErrInvalidRayID, nil,
					"ray id must be 16 hex characters", map[string]any{"rayId": args[0]})
				return reportError(p, logger, err, "Invalid ray id")
			}
			p.Success("Valid ray id")
			return nil
		},
	})

	return cmd
}

// NewFailuresCmd builds the failures command listing the codes this tool
// attaches to its own errors.
func NewFailuresCmd(logger *zap.Logger) *cobra.Command {
	return NewFailuresCmdWithPrinter(DefaultPrinter, logger)
}

// NewFailuresCmdWithPrinter returns the failures command writing to p.
func NewFailuresCmdWithPrinter(p *Printer, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "failures [code]",
		Short: "List the codes attached to cferrpage's own errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				p.Table(failuresTable())
				return nil
			}
			if !errx.IsValidCode(args[0]) {
				err := wrapWithSentinelAndContext(ErrUnknownFailureCode, nil,
					"unknown failure code: "+args[0], map[string]any{"code": args[0]})
				return reportError(p, logger, err, "Unknown failure code")
			}
			desc, _ := errx.DescriptionFor(args[0])
			p.Printf("%s %s\n", Yellow(args[0]), desc)
			return nil
		},
	}
}

func failuresTable() [][]string {
	rows := [][]string{{"Code", "Component"}}
	for _, entry := range errx.ErrorRegistry() {
		rows = append(rows, []string{entry.Code, entry.Description})
	}
	return rows
}
