package git

import (
	"context"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"
)

// ResolvedRef is a revision pinned to a commit.
type ResolvedRef struct {
	// Hash is the full SHA-1 of the commit.
	Hash string

	// CanonicalName is the full reference name, such as "refs/heads/master".
	// It is "HEAD" for HEAD and the hash itself for a bare hash.
	CanonicalName string
}

// Resolve pins rev, which may name a local branch, a tag, HEAD or a commit
// hash, to a commit. An unknown revision yields ErrResolveFailed.
func (r *Repo) Resolve(ctx context.Context, rev string) (*ResolvedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapError(err, "context cancelled")
	}

	hash, err := r.resolveHash(rev)
	if err != nil {
		return nil, err
	}

	return &ResolvedRef{Hash: hash.String(), CanonicalName: r.canonicalName(rev, hash)}, nil
}

func (r *Repo) canonicalName(rev string, hash *plumbing.Hash) string {
	if rev == "HEAD" {
		return rev
	}
	if plumbing.IsHash(rev) {
		return hash.String()
	}
	for _, name := range []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(rev),
		plumbing.NewTagReferenceName(rev),
	} {
		if ref, err := r.repo.Reference(name, true); err == nil {
			return ref.Name().String()
		}
	}
	return hash.String()
}

// Branches lists local branch names in lexical order.
func (r *Repo) Branches(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, WrapError(err, "context cancelled")
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, WrapError(err, "failed to list branches")
	}
	defer iter.Close()

	names := []string{}
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	}); err != nil {
		return nil, WrapError(err, "failed to list branches")
	}

	sort.Strings(names)
	return names, nil
}

func (r *Repo) resolveHash(rev string) (*plumbing.Hash, error) {
	if rev == "" {
		return nil, WrapError(ErrInvalidRef, "revision cannot be empty")
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, WrapErrorf(ErrResolveFailed, "revision %q", rev)
	}
	return hash, nil
}
