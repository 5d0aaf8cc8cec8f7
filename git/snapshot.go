package git

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// ReadFileAt returns the contents of file as committed at rev. The worktree
// is not touched, so the current checkout and any uncommitted changes are
// left alone. file is relative to the repository root.
//
// A revision that cannot be resolved yields ErrResolveFailed; a file absent
// from the revision's tree yields ErrFileMissing.
func (r *Repo) ReadFileAt(ctx context.Context, rev, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapError(err, "context cancelled")
	}

	name := strings.TrimPrefix(path.Clean("/"+file), "/")
	if name == "" {
		return nil, WrapError(ErrInvalidRef, "file path cannot be empty")
	}

	hash, err := r.resolveHash(rev)
	if err != nil {
		return nil, err
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, WrapErrorf(err, "failed to get commit %s", hash)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, WrapErrorf(err, "failed to get tree of commit %s", hash)
	}

	f, err := tree.File(name)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return nil, WrapErrorf(ErrFileMissing, "%s at %s", name, rev)
		}
		return nil, WrapErrorf(err, "failed to find %s at %s", name, rev)
	}

	contents, err := f.Contents()
	if err != nil {
		return nil, WrapErrorf(err, "failed to read %s at %s", name, rev)
	}

	if r.options.Logger != nil {
		r.options.Logger.Debug("read file at revision",
			"file", name,
			"revision", rev,
			"commit", hash.String(),
			"bytes", len(contents),
		)
	}

	return []byte(contents), nil
}
