package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Table([][]string{
		{"Code", "Title"},
		{"502", "Bad Gateway"},
	})

	if !strings.Contains(out.String(), "Bad Gateway") {
		t.Fatalf("table output missing row: %q", out.String())
	}
}

func TestPrintTableBoxed(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.TableBoxed([][]string{
		{"Field", "Value"},
		{"Description", "Origin down"},
	})

	if !strings.Contains(out.String(), "Origin down") {
		t.Fatalf("boxed table output missing row: %q", out.String())
	}
}

func TestPrintTableEmpty(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Table([][]string{})
	p.TableBoxed(nil)

	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestPrinterColors(t *testing.T) {
	if Green("test") == "" {
		t.Error("Green should return non-empty string")
	}
	if Yellow("test") == "" {
		t.Error("Yellow should return non-empty string")
	}
	if Red("test") == "" {
		t.Error("Red should return non-empty string")
	}
	if Cyan("test") == "" {
		t.Error("Cyan should return non-empty string")
	}
}

func TestPrinterNotificationsGoToErr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Out: &out, Err: &errOut}

	p.Success("saved")
	p.Error("failed")
	p.Warn("careful")
	p.Info("note")
	p.Step("step")

	if out.Len() != 0 {
		t.Fatalf("notifications leaked to Out: %q", out.String())
	}
	for _, want := range []string{"saved", "failed", "careful", "note", "step"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("Err missing %q: %q", want, errOut.String())
		}
	}
}

func TestPrinterQuietMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Quiet: true, Out: &out, Err: &errOut}

	p.Section("test")
	p.Step("test")
	p.Info("test")
	p.Success("test")
	p.Error("test")
	p.Warn("test")
	if errOut.Len() != 0 {
		t.Fatalf("quiet printer wrote notifications: %q", errOut.String())
	}

	p.Printf("value=%d\n", 1)
	if out.String() != "value=1\n" {
		t.Fatalf("data output must not be suppressed, got %q", out.String())
	}
}

func TestConfigureOutput(t *testing.T) {
	orig := DefaultPrinter.Quiet
	t.Cleanup(func() { DefaultPrinter.Quiet = orig })

	ConfigureOutput(true, nil)
	if !DefaultPrinter.Quiet {
		t.Fatal("expected quiet DefaultPrinter")
	}
}
