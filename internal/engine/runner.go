package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Runner executes engine binary invocations. The seam exists so tests
// can record argv without a docker daemon.
type Runner interface {
	// Run executes the command with stdio inherited from the process.
	// The call blocks until the command exits.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner is the real subprocess-backed Runner.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, args[0], err)
	}
	return nil
}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", name, args[0], err, stderr.String())
	}
	return stdout.String(), nil
}
