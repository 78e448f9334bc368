// Package engine drives the container engine through its CLI binary.
// There is no daemon API connection: every operation is a synchronous
// subprocess invocation, so a hung engine blocks the whole run. That
// is acceptable for an operator-driven tool.
package engine

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// binary is the container engine command.
const binary = "docker"

// ImagePrefix namespaces locally built images.
const ImagePrefix = "local_discourse"

// ImageTag returns the local image tag for a deployment name.
func ImageTag(name string) string {
	return ImagePrefix + "/" + name
}

// Docker runs container lifecycle operations for composed deployments.
type Docker struct {
	runner Runner
}

// New returns a Docker backed by real subprocess execution.
func New() *Docker {
	return &Docker{runner: execRunner{}}
}

// NewWithRunner returns a Docker backed by the given Runner.
func NewWithRunner(r Runner) *Docker {
	return &Docker{runner: r}
}

// RunningContainer returns the id of the running container with the
// given name, or the empty string when none is running.
func (d *Docker) RunningContainer(ctx context.Context, name string) (string, error) {
	out, err := d.runner.Output(ctx, binary, "ps", "-q", "-f", "name="+name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Build builds the deployment image from the artifact directory. The
// cache is suppressed because the image build clones the latest
// application source; a cached layer would pin a stale clone. Each
// image is labeled with the invocation id that produced it.
func (d *Docker) Build(ctx context.Context, name, baseImage, contextDir string) error {
	return d.runner.Run(ctx, binary,
		"build", "--no-cache",
		"-t", ImageTag(name),
		"--build-arg", "BASE_IMAGE="+baseImage,
		"--label", "stevedore.build="+uuid.NewString(),
		contextDir,
	)
}

// Start runs a detached container for the deployment with the composed
// engine arguments.
func (d *Docker) Start(ctx context.Context, name string, runArgs []string) error {
	args := []string{"run", "--rm", "-d", "-i", "--name", name}
	args = append(args, runArgs...)
	args = append(args, ImageTag(name))
	return d.runner.Run(ctx, binary, args...)
}

// StartCommand returns the printable equivalent of the run invocation.
func (d *Docker) StartCommand(name string, runArgs []string) string {
	parts := []string{binary, "run", "--rm", "-i", "--name", name}
	parts = append(parts, runArgs...)
	parts = append(parts, ImageTag(name))
	return strings.Join(parts, " ")
}

// Stop stops the container with the given id.
func (d *Docker) Stop(ctx context.Context, id string) error {
	return d.runner.Run(ctx, binary, "stop", id)
}

// Restart restarts the container with the given id.
func (d *Docker) Restart(ctx context.Context, id string) error {
	return d.runner.Run(ctx, binary, "restart", id)
}

// Logs streams the container's logs to the terminal.
func (d *Docker) Logs(ctx context.Context, name string) error {
	return d.runner.Run(ctx, binary, "logs", name)
}

// Enter executes a login shell inside the running container. A TTY is
// requested only when stdin actually is one.
func (d *Docker) Enter(ctx context.Context, name string) error {
	flags := "-i"
	if term.IsTerminal(int(os.Stdin.Fd())) {
		flags = "-it"
	}
	return d.runner.Run(ctx, binary, "exec", flags, name, "/bin/bash", "--login")
}
