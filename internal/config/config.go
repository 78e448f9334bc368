// Package config describes a single deployment: which config file
// drives it, where templates are searched, and where artifacts land.
package config

import (
	"path/filepath"
	"strings"
)

// DefaultTemplateRoots are searched in order when --template-root is
// not given: the working directory, then the conventional checkout of
// the upstream template repository.
var DefaultTemplateRoots = []string{".", "./discourse_docker"}

// ArtifactDir is the fixed build context directory holding the
// Dockerfile and the init/build artifacts.
const ArtifactDir = "dkr"

// Deployment identifies one composed container deployment.
type Deployment struct {
	// ConfigPath is the per-deployment config file.
	ConfigPath string

	// Name is the config base name with its extension stripped. It
	// names the container and the image tag suffix.
	Name string

	// TemplateRoots are the ordered template search directories.
	TemplateRoots []string

	// ArtifactDir is the build context directory artifacts go to.
	ArtifactDir string
}

// NewDeployment builds a Deployment for a config file path. Empty roots
// fall back to DefaultTemplateRoots.
func NewDeployment(configPath string, roots []string) *Deployment {
	if len(roots) == 0 {
		roots = DefaultTemplateRoots
	}

	base := filepath.Base(configPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return &Deployment{
		ConfigPath:    configPath,
		Name:          name,
		TemplateRoots: roots,
		ArtifactDir:   ArtifactDir,
	}
}
