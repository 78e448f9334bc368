package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/cameronsjo/stevedore/internal/engine"
)

// executeCmd runs the root command with args and returns its combined
// cobra output.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// fakeRunner records engine invocations and replays a canned ps output.
type fakeRunner struct {
	calls    [][]string
	psOutput string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return nil
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.psOutput, nil
}

// installFakeEngine swaps the engine seam for the duration of a test.
func installFakeEngine(t *testing.T, runner *fakeRunner) {
	t.Helper()

	origNew := newEngine
	origRequire := requireEngine
	newEngine = func() *engine.Docker { return engine.NewWithRunner(runner) }
	requireEngine = func() error { return nil }
	t.Cleanup(func() {
		newEngine = origNew
		requireEngine = origRequire
	})
}

// subcommand returns the docker subcommand of a recorded call, or "".
func subcommand(call []string) string {
	if len(call) < 2 {
		return ""
	}
	return call[1]
}
