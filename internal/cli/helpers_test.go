package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cferrpage/internal/config"
	"cferrpage/internal/export"
	"cferrpage/internal/render"
)

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

const testRayID = "0123456789abcdef"

// MockCommand is a Command that records whether it ran.
type MockCommand struct {
	RunErr error
	Ran    bool
}

func (c *MockCommand) Run() error {
	c.Ran = true
	return c.RunErr
}

func (c *MockCommand) SetStdout(io.Writer) {}
func (c *MockCommand) SetStderr(io.Writer) {}

// MockExecutor applies validators like the real executor and records specs.
type MockExecutor struct {
	Specs       []ExecSpec
	Commands    []*MockCommand
	CommandFunc func(ExecSpec) *MockCommand
}

func (m *MockExecutor) Command(name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: args}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}
	m.Specs = append(m.Specs, spec)
	cmd := &MockCommand{}
	if m.CommandFunc != nil {
		cmd = m.CommandFunc(spec)
	}
	m.Commands = append(m.Commands, cmd)
	return cmd, nil
}

type fakeClipboard struct {
	ok     bool
	copied []string
}

func (f *fakeClipboard) Copy(_ context.Context, text string) bool {
	f.copied = append(f.copied, text)
	return f.ok
}

type failingDownloader struct{ err error }

func (f failingDownloader) SaveHTML(string, string, string) (string, error) {
	return "", f.err
}

type testEnv struct {
	dir       string
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	clipboard *fakeClipboard
	exec      *MockExecutor
}

func newTestManager(t *testing.T) (*PageManager, *testEnv) {
	t.Helper()
	env := &testEnv{
		dir:       t.TempDir(),
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
		clipboard: &fakeClipboard{ok: true},
		exec:      &MockExecutor{},
	}
	clock := func() time.Time { return testNow }
	store := config.New(
		config.WithClock(clock),
		config.WithRayIDGenerator(func() string { return testRayID }),
	)
	cfg := CLIConfig{
		OutputDir:     env.dir,
		PreviewFile:   filepath.Join(env.dir, "preview.html"),
		WatchDebounce: 10 * time.Millisecond,
	}
	mgr := NewPageManager(
		store,
		render.New(render.WithClock(clock)),
		env.clipboard,
		export.NewFileDownloader(),
		env.exec,
		&Printer{Out: env.out, Err: env.errOut},
		cfg,
		zap.NewNop(),
	)
	return mgr, env
}

// runCommand executes cmd with args, sending command output to env.out.
func runCommand(cmd *cobra.Command, env *testEnv, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(env.out)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}
