// Package preflight validates that the external binaries stevedore
// shells out to are actually present.
package preflight

import (
	"fmt"
	"os/exec"
)

// BinaryCheck represents an external binary and its purpose.
type BinaryCheck struct {
	Name        string
	Required    bool   // false = warning only
	InstallHint string // e.g., "brew install sops" or "https://..."
}

// requiredBinaries must be present for any lifecycle command to work.
var requiredBinaries = []BinaryCheck{
	{
		Name:        "docker",
		Required:    true,
		InstallHint: "Install Docker: https://docs.docker.com/get-docker/",
	},
}

// optionalBinaries enhance stevedore but are not strictly required.
var optionalBinaries = []BinaryCheck{
	{
		Name:        "git",
		Required:    false,
		InstallHint: "Install git: https://git-scm.com/downloads",
	},
	{
		Name:        "sops",
		Required:    false,
		InstallHint: "Install sops: brew install sops",
	},
}

// CheckAll performs all pre-flight checks. Errors are missing required
// binaries, warnings are missing optional binaries.
func CheckAll() (warnings []string, errors []string) {
	for _, bin := range requiredBinaries {
		if !IsBinaryAvailable(bin.Name) {
			errors = append(errors, bin.Name+": "+bin.InstallHint)
		}
	}

	for _, bin := range optionalBinaries {
		if !IsBinaryAvailable(bin.Name) {
			warnings = append(warnings, bin.Name+": "+bin.InstallHint)
		}
	}

	return warnings, errors
}

// IsBinaryAvailable checks if a specific binary is available in PATH.
func IsBinaryAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RequireEngine fails fast with an install hint when the container
// engine binary is absent.
func RequireEngine() error {
	for _, bin := range requiredBinaries {
		if !IsBinaryAvailable(bin.Name) {
			return fmt.Errorf("%s not found in PATH. %s", bin.Name, bin.InstallHint)
		}
	}
	return nil
}
