package cmd

import (
	"github.com/cameronsjo/stevedore/internal/compose"
	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/engine"
	"github.com/cameronsjo/stevedore/internal/preflight"
	"github.com/cameronsjo/stevedore/internal/ui"
)

// newEngine and requireEngine are seams so tests can run the commands
// without a docker binary on the host.
var (
	newEngine     = engine.New
	requireEngine = preflight.RequireEngine
)

// newDeployment builds the deployment for a config path using the
// current --template-root flag values.
func newDeployment(configPath string) *config.Deployment {
	return config.NewDeployment(configPath, templateRoots)
}

// loadDocuments resolves the ordered document sequence for dep. Every
// command runs this, even ones that never compose, so a broken config
// or missing template fails fast regardless of the operation.
func loadDocuments(dep *config.Deployment) ([]compose.Document, error) {
	return compose.LoadDocuments(dep.ConfigPath, dep.TemplateRoots)
}

// composeAndWrite runs the full composition for dep, surfaces
// substitution warnings, and persists the init/build artifacts.
func composeAndWrite(dep *config.Deployment) (*compose.Result, error) {
	docs, err := loadDocuments(dep)
	if err != nil {
		return nil, err
	}

	res, err := compose.Compose(docs, dep.Name)
	if err != nil {
		return nil, err
	}

	for _, name := range res.Missing {
		ui.Warning("found parameter $%s but could not substitute it", name)
	}

	if err := compose.WriteArtifacts(res, dep.ArtifactDir); err != nil {
		return nil, err
	}

	return res, nil
}
