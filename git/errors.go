package git

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be checked with errors.Is().
// These wrap underlying go-git errors while providing a stable API for consumers.

// ErrBranchExists is returned when attempting to create a branch that already exists
// and force creation was not requested.
var ErrBranchExists = errors.New("branch already exists")

// ErrBranchMissing is returned when attempting to operate on a branch that does not exist.
var ErrBranchMissing = errors.New("branch does not exist")

// ErrInvalidRef is returned when a reference name, revision specification or
// option is malformed.
var ErrInvalidRef = errors.New("invalid reference")

// ErrResolveFailed is returned when a revision specification cannot be resolved
// to a valid commit hash (e.g., branch/tag doesn't exist, invalid SHA).
var ErrResolveFailed = errors.New("cannot resolve revision")

// ErrFileMissing is returned when a file does not exist in the tree of a revision.
var ErrFileMissing = errors.New("file does not exist at revision")

// ErrEmptyCommit is returned when committing with nothing staged.
var ErrEmptyCommit = errors.New("empty commit")

// ErrNoIdentity is returned when no author name or email is configured.
var ErrNoIdentity = errors.New("no author identity configured")

// ErrNotRepository is returned when no repository can be found.
var ErrNotRepository = errors.New("not a git repository")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
