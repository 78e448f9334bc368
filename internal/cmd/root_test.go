package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Structure(t *testing.T) {
	commands := rootCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name())
	}

	for _, want := range []string{
		"enter", "build", "rebuild", "start", "stop", "restart",
		"start-cmd", "logs", "sync", "doctor", "update",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_Help(t *testing.T) {
	output, err := executeCmd(t, "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "stevedore")
	assert.Contains(t, output, "template-root")
}

func TestLifecycleCommandsRequireConfigArg(t *testing.T) {
	for _, name := range []string{"build", "rebuild", "start", "stop", "restart", "start-cmd", "enter", "logs"} {
		t.Run(name, func(t *testing.T) {
			_, err := executeCmd(t, name)
			assert.Error(t, err)
		})
	}
}
