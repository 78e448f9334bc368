package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cameronsjo/stevedore/internal/config"
)

func TestNewDeployment(t *testing.T) {
	t.Parallel()

	t.Run("name strips extension", func(t *testing.T) {
		t.Parallel()

		dep := config.NewDeployment("app.yml", nil)
		assert.Equal(t, "app", dep.Name)
	})

	t.Run("name strips directory and extension", func(t *testing.T) {
		t.Parallel()

		dep := config.NewDeployment("configs/forum.yaml", nil)
		assert.Equal(t, "forum", dep.Name)
	})

	t.Run("sops configs keep the sops marker in the name", func(t *testing.T) {
		t.Parallel()

		// Only the final extension is stripped; the container for
		// app.sops.yml is named app.sops. Operators who want a clean
		// container name rename the config.
		dep := config.NewDeployment("app.sops.yml", nil)
		assert.Equal(t, "app.sops", dep.Name)
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()

		dep := config.NewDeployment("app.yml", nil)
		assert.Equal(t, config.DefaultTemplateRoots, dep.TemplateRoots)
		assert.Equal(t, config.ArtifactDir, dep.ArtifactDir)
	})

	t.Run("explicit roots preserved in order", func(t *testing.T) {
		t.Parallel()

		roots := []string{"/srv/templates", "."}
		dep := config.NewDeployment("app.yml", roots)
		assert.Equal(t, roots, dep.TemplateRoots)
	})
}
