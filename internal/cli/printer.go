package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Printer writes notifications and tabular output. Notifications go to Err so
// they never mix with page or data output on Out. Quiet suppresses
// everything except data written with Printf, Println and the table helpers.
type Printer struct {
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// DefaultPrinter is used by the package-level helpers.
var DefaultPrinter = &Printer{}

func (p *Printer) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

func (p *Printer) err() io.Writer {
	if p.Err != nil {
		return p.Err
	}
	return os.Stderr
}

// Success prints a success notification.
func (p *Printer) Success(msg string) {
	if p.Quiet {
		return
	}
	pterm.Success.WithWriter(p.err()).Println(msg)
}

// Error prints an error notification.
func (p *Printer) Error(msg string) {
	if p.Quiet {
		return
	}
	pterm.Error.WithWriter(p.err()).Println(msg)
}

// Warn prints a warning notification.
func (p *Printer) Warn(msg string) {
	if p.Quiet {
		return
	}
	pterm.Warning.WithWriter(p.err()).Println(msg)
}

// Info prints an informational notification.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	pterm.Info.WithWriter(p.err()).Println(msg)
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	pterm.DefaultSection.WithWriter(p.err()).Println(title)
}

// Step prints a progress line.
func (p *Printer) Step(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.err(), "%s %s\n", Cyan("→"), msg)
}

// Printf writes formatted data output.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out(), format, args...)
}

// Println writes a line of data output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out(), args...)
}

// Table renders data with the first row as header.
func (p *Printer) Table(data [][]string) {
	if len(data) == 0 {
		return
	}
	_ = pterm.DefaultTable.WithWriter(p.out()).WithHasHeader().WithData(data).Render()
}

// TableBoxed renders data like Table, inside a box.
func (p *Printer) TableBoxed(data [][]string) {
	if len(data) == 0 {
		return
	}
	_ = pterm.DefaultTable.WithWriter(p.out()).WithHasHeader().WithBoxed().WithData(data).Render()
}

// Success prints a success notification with DefaultPrinter.
func Success(msg string) { DefaultPrinter.Success(msg) }

// Error prints an error notification with DefaultPrinter.
func Error(msg string) { DefaultPrinter.Error(msg) }

// Warn prints a warning notification with DefaultPrinter.
func Warn(msg string) { DefaultPrinter.Warn(msg) }

// Info prints an informational notification with DefaultPrinter.
func Info(msg string) { DefaultPrinter.Info(msg) }

// Table renders data with DefaultPrinter.
func Table(data [][]string) { DefaultPrinter.Table(data) }

// TableBoxed renders boxed data with DefaultPrinter.
func TableBoxed(data [][]string) { DefaultPrinter.TableBoxed(data) }

func Green(s string) string  { return pterm.Green(s) }
func Yellow(s string) string { return pterm.Yellow(s) }
func Red(s string) string    { return pterm.Red(s) }
func Cyan(s string) string   { return pterm.Cyan(s) }

// ConfigureOutput sets quiet mode and turns colors off when NO_COLOR is set
// or when f is not a terminal.
func ConfigureOutput(quiet bool, f *os.File) {
	DefaultPrinter.Quiet = quiet
	if os.Getenv("NO_COLOR") != "" || f == nil || !term.IsTerminal(int(f.Fd())) {
		pterm.DisableColor()
		return
	}
	pterm.EnableColor()
}
