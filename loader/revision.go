package loader

import (
	"context"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/git"
)

// RevisionReader reads a file as it exists at a git revision.
// *git.Repo implements it.
type RevisionReader interface {
	ReadFileAt(ctx context.Context, rev, path string) ([]byte, error)
}

var _ RevisionReader = (*git.Repo)(nil)

// LoadArchitectureAtRevision loads the architecture document at path as it
// exists at rev, typically a base branch name. A revision or file that does
// not exist is reported with errors.CodeNotFound.
func LoadArchitectureAtRevision(ctx context.Context, reader RevisionReader, rev, path string) (*c4.Architecture, error) {
	loadErr := func(err error) error {
		return errors.WrapWithContext(
			err,
			errors.CodeGitLoadFailed,
			"failed to load architecture from git",
			map[string]interface{}{
				"revision": rev,
				"path":     path,
			},
		)
	}

	data, err := reader.ReadFileAt(ctx, rev, path)
	if err != nil {
		code := errors.CodeInternal
		if errors.Is(err, git.ErrResolveFailed) || errors.Is(err, git.ErrFileMissing) {
			code = errors.CodeNotFound
		}
		return nil, loadErr(errors.Wrap(err, code, "failed to read file at revision"))
	}

	arch, err := parseArchitecture(data, LoadOptions{})
	if err != nil {
		return nil, loadErr(err)
	}
	return arch, nil
}
