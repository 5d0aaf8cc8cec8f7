package git

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CurrentBranch returns the short name of the checked out branch. A detached
// or unborn HEAD is an error.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", WrapError(err, "context cancelled")
	}

	head, err := r.repo.Head()
	if err != nil {
		return "", WrapError(err, "failed to read HEAD")
	}
	if !head.Name().IsBranch() {
		return "", WrapErrorf(ErrResolveFailed, "HEAD is detached at %s", head.Hash())
	}
	return head.Name().Short(), nil
}

// CreateBranch points a new local branch at startRev. An existing branch is
// only moved when force is set.
func (r *Repo) CreateBranch(ctx context.Context, name, startRev string, force bool) error {
	if err := ctx.Err(); err != nil {
		return WrapError(err, "context cancelled")
	}
	if name == "" {
		return WrapError(ErrInvalidRef, "branch name cannot be empty")
	}

	hash, err := r.resolveHash(startRev)
	if err != nil {
		return err
	}

	refName := plumbing.NewBranchReferenceName(name)
	if r.hasReference(refName) && !force {
		return WrapErrorf(ErrBranchExists, "branch %q", name)
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(refName, *hash)); err != nil {
		return WrapErrorf(err, "failed to write branch %q", name)
	}
	return nil
}

// CheckoutBranch switches the worktree to the named branch. With
// createIfMissing an absent branch is created at HEAD; like `git checkout -b`
// this keeps local changes since the commit does not move. force discards
// local changes when switching to another commit.
func (r *Repo) CheckoutBranch(ctx context.Context, name string, createIfMissing, force bool) error {
	if err := ctx.Err(); err != nil {
		return WrapError(err, "context cancelled")
	}
	if name == "" {
		return WrapError(ErrInvalidRef, "branch name cannot be empty")
	}

	refName := plumbing.NewBranchReferenceName(name)
	created := false
	if !r.hasReference(refName) {
		if !createIfMissing {
			return WrapErrorf(ErrBranchMissing, "branch %q", name)
		}
		if err := r.CreateBranch(ctx, name, "HEAD", false); err != nil {
			return err
		}
		created = true
	}

	if err := r.worktree.Checkout(&git.CheckoutOptions{
		Branch: refName,
		Force:  force,
		Keep:   created && !force,
	}); err != nil {
		return WrapErrorf(err, "failed to check out %q", name)
	}
	return nil
}

func (r *Repo) hasReference(name plumbing.ReferenceName) bool {
	_, err := r.repo.Reference(name, true)
	return err == nil
}
