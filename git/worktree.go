package git

import (
	"context"
	"errors"
	"strings"
	"time"

	gobilly "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/eugenedong/arch-as-code/git/internal/fsbridge"
)

// Add stages paths, relative to the workdir, for the next commit. Glob
// patterns are expanded; paths that match nothing are skipped, as git add
// does for patterns.
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	if err := ctx.Err(); err != nil {
		return WrapError(err, "context cancelled")
	}

	files, err := r.expand(paths)
	if err != nil {
		return err
	}

	for _, f := range files {
		if _, err := r.worktree.Add(f); err != nil {
			return WrapErrorf(err, "failed to stage %q", f)
		}
	}
	return nil
}

// expand resolves globs against the workdir and drops paths that do not exist.
func (r *Repo) expand(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	workdir, err := r.workdirFS()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, p := range paths {
		switch {
		case p == "":
		case strings.ContainsAny(p, "*?["):
			matches, err := util.Glob(workdir, p)
			if err != nil {
				return nil, WrapErrorf(err, "bad pattern %q", p)
			}
			files = append(files, matches...)
		default:
			if _, err := workdir.Stat(p); err == nil {
				files = append(files, p)
			}
		}
	}
	return files, nil
}

func (r *Repo) workdirFS() (gobilly.Filesystem, error) {
	root, err := fsbridge.ToBillyFilesystem(r.fs)
	if err != nil {
		return nil, WrapError(err, "failed to bridge filesystem")
	}
	workdir, err := root.Chroot(r.options.Workdir)
	if err != nil {
		return nil, WrapErrorf(err, "failed to open workdir %q", r.options.Workdir)
	}
	return workdir, nil
}

// Commit records the staged changes with who as author and committer and
// returns the new commit hash. Nothing staged is ErrEmptyCommit unless
// opts.AllowEmpty is set.
func (r *Repo) Commit(ctx context.Context, msg string, who Signature, opts CommitOpts) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", WrapError(err, "context cancelled")
	}
	if msg == "" {
		return "", WrapError(ErrInvalidRef, "commit message cannot be empty")
	}
	if who.Name == "" || who.Email == "" {
		return "", WrapError(ErrInvalidRef, "commit needs an author name and email")
	}

	if !opts.AllowEmpty {
		staged, err := r.hasStagedChanges()
		if err != nil {
			return "", err
		}
		if !staged {
			return "", WrapError(ErrEmptyCommit, "nothing staged")
		}
	}

	sig := &object.Signature{Name: who.Name, Email: who.Email, When: who.When}
	hash, err := r.worktree.Commit(msg, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: opts.AllowEmpty,
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return "", ErrEmptyCommit
	}
	if err != nil {
		return "", WrapError(err, "failed to commit")
	}

	if r.options.Logger != nil {
		r.options.Logger.Debug("committed", "commit", hash.String(), "author", who.Email)
	}
	return hash.String(), nil
}

func (r *Repo) hasStagedChanges() (bool, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return false, WrapError(err, "failed to read worktree status")
	}
	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// Author returns the identity git would commit with, read from the
// repository configuration and then the user's global configuration, stamped
// with when. A missing name or email is ErrNoIdentity.
func (r *Repo) Author(when time.Time) (Signature, error) {
	cfg, err := r.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return Signature{}, WrapError(err, "failed to read git configuration")
	}

	sig := Signature{Name: cfg.User.Name, Email: cfg.User.Email, When: when}
	if cfg.Author.Name != "" {
		sig.Name = cfg.Author.Name
	}
	if cfg.Author.Email != "" {
		sig.Email = cfg.Author.Email
	}
	if sig.Name == "" || sig.Email == "" {
		return Signature{}, WrapError(ErrNoIdentity, "set user.name and user.email")
	}
	return sig, nil
}
