// Package update provides self-update functionality for stevedore.
package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
)

const (
	// Repository owner and name for GitHub releases.
	repoOwner = "cameronsjo"
	repoName  = "stevedore"
)

// Release contains information about an available update.
type Release struct {
	Version     string
	ReleaseURL  string
	PublishedAt string
	Changelog   string
}

// detectLatest resolves the newest published release, or nil when the
// current version is already the latest.
func detectLatest(ctx context.Context, currentVersion string) (*selfupdate.Updater, *selfupdate.Release, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, nil, fmt.Errorf("creating update source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, nil, fmt.Errorf("creating updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return nil, nil, fmt.Errorf("detecting latest version: %w", err)
	}
	if !found || latest.LessOrEqual(currentVersion) {
		return updater, nil, nil
	}

	return updater, latest, nil
}

// CheckForUpdate checks if a newer version is available.
func CheckForUpdate(ctx context.Context, currentVersion string) (*Release, bool, error) {
	_, latest, err := detectLatest(ctx, currentVersion)
	if err != nil {
		return nil, false, err
	}
	if latest == nil {
		return nil, false, nil
	}

	return newRelease(latest), true, nil
}

// Apply downloads and installs the latest version over the running
// binary. Returns nil when already up to date.
func Apply(ctx context.Context, currentVersion string) (*Release, error) {
	updater, latest, err := detectLatest(ctx, currentVersion)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("getting executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("updating binary: %w", err)
	}

	return newRelease(latest), nil
}

func newRelease(latest *selfupdate.Release) *Release {
	return &Release{
		Version:     latest.Version(),
		ReleaseURL:  latest.URL,
		PublishedAt: latest.PublishedAt.Format("2006-01-02"),
		Changelog:   latest.ReleaseNotes,
	}
}

// PlatformInfo returns the current platform information.
func PlatformInfo() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
