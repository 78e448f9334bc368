// Package repo keeps template checkouts current. Template roots are
// conventionally git clones of the upstream template repository, so
// sync is a fast-forward pull per root.
package repo

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Status is the outcome of syncing one template root.
type Status int

const (
	// StatusNotRepo means the root is not a git repository; skipped.
	StatusNotRepo Status = iota
	// StatusUpToDate means the checkout already matched the remote.
	StatusUpToDate
	// StatusUpdated means new commits were pulled.
	StatusUpdated
)

// Sync fast-forwards the checkout at root from its origin remote.
// A root that is not a git repository is reported, not an error.
func Sync(ctx context.Context, root string) (Status, error) {
	r, err := git.PlainOpen(root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return StatusNotRepo, nil
		}
		return StatusNotRepo, fmt.Errorf("open %s: %w", root, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return StatusNotRepo, fmt.Errorf("worktree %s: %w", root, err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return StatusUpToDate, nil
	}
	if err != nil {
		return StatusUpToDate, fmt.Errorf("pull %s: %w", root, err)
	}

	return StatusUpdated, nil
}
