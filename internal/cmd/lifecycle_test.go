package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkspace chdirs into a temp dir holding a deployment config and
// one template, mirroring an operator checkout.
func setupWorkspace(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "web.yml"),
		[]byte("env:\n  FOO: bar\nexpose:\n  - \"80\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yml"),
		[]byte("templates:\n  - web.yml\nenv:\n  FOO: baz\n"), 0o644))

	t.Chdir(dir)
}

func TestStartCmd(t *testing.T) {
	setupWorkspace(t)
	installFakeEngine(t, &fakeRunner{})

	output, err := executeCmd(t, "start-cmd", "app.yml")
	require.NoError(t, err)

	assert.Contains(t, output, "docker run --rm -i --name app")
	assert.Contains(t, output, "local_discourse/app")
	assert.Contains(t, output, "-p 80")

	// The config's env overrides the template's.
	assert.Contains(t, output, "-e FOO=baz")
	assert.NotContains(t, output, "FOO=bar")
}

func TestStartCmdWritesArtifacts(t *testing.T) {
	setupWorkspace(t)
	installFakeEngine(t, &fakeRunner{})

	_, err := executeCmd(t, "start-cmd", "app.yml")
	require.NoError(t, err)

	init, err := os.ReadFile(filepath.Join("dkr", "init"))
	require.NoError(t, err)
	assert.Contains(t, string(init), "hack: true")
	assert.Contains(t, string(init), "_FILE_SEPERATOR_")
	assert.Contains(t, string(init), "FOO: baz")

	_, err = os.Stat(filepath.Join("dkr", "build"))
	assert.NoError(t, err)
}

func TestStartCmdMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yml"),
		[]byte("templates:\n  - nope.yml\n"), 0o644))
	t.Chdir(dir)

	_, err := executeCmd(t, "start-cmd", "app.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yml")

	// Fatal template errors leave no artifacts behind.
	_, statErr := os.Stat("dkr")
	assert.True(t, os.IsNotExist(statErr))
}

func TestRebuild(t *testing.T) {
	t.Run("restarts a previously running container", func(t *testing.T) {
		setupWorkspace(t)
		runner := &fakeRunner{psOutput: "abc123\n"}
		installFakeEngine(t, runner)

		_, err := executeCmd(t, "rebuild", "app.yml")
		require.NoError(t, err)

		var subs []string
		for _, call := range runner.calls {
			subs = append(subs, subcommand(call))
		}
		assert.Equal(t, []string{"ps", "stop", "build", "run"}, subs)
	})

	t.Run("leaves a stopped container down", func(t *testing.T) {
		setupWorkspace(t)
		runner := &fakeRunner{psOutput: ""}
		installFakeEngine(t, runner)

		_, err := executeCmd(t, "rebuild", "app.yml")
		require.NoError(t, err)

		var subs []string
		for _, call := range runner.calls {
			subs = append(subs, subcommand(call))
		}
		assert.Equal(t, []string{"ps", "build"}, subs)
	})
}

func TestStop(t *testing.T) {
	t.Run("stops the running container by id", func(t *testing.T) {
		setupWorkspace(t)
		runner := &fakeRunner{psOutput: "abc123\n"}
		installFakeEngine(t, runner)

		_, err := executeCmd(t, "stop", "app.yml")
		require.NoError(t, err)

		require.Len(t, runner.calls, 2)
		assert.Equal(t, []string{"docker", "stop", "abc123"}, runner.calls[1])
	})

	t.Run("no-op when nothing is running", func(t *testing.T) {
		setupWorkspace(t)
		runner := &fakeRunner{psOutput: ""}
		installFakeEngine(t, runner)

		_, err := executeCmd(t, "stop", "app.yml")
		require.NoError(t, err)

		require.Len(t, runner.calls, 1)
		assert.Equal(t, "ps", subcommand(runner.calls[0]))
	})
}

func TestBuildUsesResolvedBaseImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yml"),
		[]byte("base_image: custom/base:9\n"), 0o644))
	t.Chdir(dir)

	runner := &fakeRunner{}
	installFakeEngine(t, runner)

	_, err := executeCmd(t, "build", "app.yml")
	require.NoError(t, err)

	require.NotEmpty(t, runner.calls)
	build := runner.calls[len(runner.calls)-1]
	assert.Equal(t, "build", subcommand(build))
	assert.Contains(t, build, "BASE_IMAGE=custom/base:9")
	assert.Contains(t, build, "local_discourse/app")
}
