package compose

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cameronsjo/stevedore/internal/fileutil"
)

// Artifact file names inside the build context directory.
const (
	InitArtifact  = "init"
	BuildArtifact = "build"
)

// WriteArtifacts persists the init and build artifacts into dir. Both
// files are replaced wholesale on every composition; writes go through
// a temp file and rename so a crash never leaves a torn artifact.
func WriteArtifacts(res *Result, dir string) error {
	if err := fileutil.WriteFile(filepath.Join(dir, InitArtifact), []byte(res.Init), 0o644); err != nil {
		return fmt.Errorf("write init artifact: %w", err)
	}

	if err := fileutil.WriteFile(filepath.Join(dir, BuildArtifact), []byte(res.Build), 0o644); err != nil {
		return fmt.Errorf("write build artifact: %w", err)
	}

	return nil
}

// normalizeNewlines forces Linux line endings. The artifacts are read
// inside the container no matter what platform composed them.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
