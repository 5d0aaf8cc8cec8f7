package git

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	gobilly "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/eugenedong/arch-as-code/fs"
	"github.com/eugenedong/arch-as-code/git/internal/fsbridge"
)

const (
	// DefaultStorerCacheSize is the default size for the LRU object cache.
	DefaultStorerCacheSize = 1000

	// DefaultWorkdir is the default worktree directory name.
	DefaultWorkdir = "."
)

// Options configures repository discovery/creation and performance.
type Options struct {
	// FS is the REQUIRED native filesystem root (OS or in-memory).
	// All repository state lives within this filesystem.
	FS fs.Filesystem

	// Workdir is the path within FS for the worktree root.
	// Defaults to "." (current directory in FS).
	Workdir string

	// StorerCacheSize sets the LRU objects cache entries.
	// Defaults to DefaultStorerCacheSize.
	StorerCacheSize int

	// Logger receives debug output for snapshot reads. Nil disables logging.
	Logger *slog.Logger
}

// Validate checks that the Options are properly configured.
func (o *Options) Validate() error {
	if o.FS == nil {
		return WrapError(ErrInvalidRef, "FS is required")
	}

	if o.StorerCacheSize < 0 {
		return WrapError(ErrInvalidRef, "StorerCacheSize cannot be negative")
	}

	return nil
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}

	if o.StorerCacheSize == 0 {
		o.StorerCacheSize = DefaultStorerCacheSize
	}
}

// Init creates a new non-bare git repository at the configured workdir.
func Init(ctx context.Context, opts *Options) (*Repo, error) {
	storage, worktreeFS, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	repo, err := git.Init(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to initialize repository")
	}

	return newRepo(repo, opts)
}

// Open opens an existing repository. Both the .git directory and the
// worktree must be present at the configured workdir.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	storage, worktreeFS, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	repo, err := git.Open(storage, worktreeFS)
	if err != nil {
		return nil, WrapError(err, "failed to open repository")
	}

	return newRepo(repo, opts)
}

// FindRoot walks up from start until it finds a directory holding a .git
// entry and returns that directory. Paths use forward slashes and are
// relative to fsys.
func FindRoot(fsys fs.ReadFS, start string) (string, error) {
	dir := path.Clean(start)
	for {
		ok, err := fsys.Exists(path.Join(dir, ".git"))
		if err != nil {
			return "", WrapErrorf(err, "failed to look for .git in %q", dir)
		}
		if ok {
			return dir, nil
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", WrapErrorf(ErrNotRepository, "no repository above %q", start)
		}
		dir = parent
	}
}

// prepare validates opts and builds go-git storage rooted at the workdir.
func prepare(opts *Options) (*filesystem.Storage, gobilly.Filesystem, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, WrapError(err, "invalid options")
	}

	opts.applyDefaults()

	billyFS, err := fsbridge.ToBillyFilesystem(opts.FS)
	if err != nil {
		return nil, nil, fmt.Errorf("filesystem conversion failed: %w", err)
	}

	scopedFS, err := billyFS.Chroot(opts.Workdir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to chroot to workdir %q: %w", opts.Workdir, err)
	}

	dotGitFS, err := scopedFS.Chroot(".git")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to access .git directory: %w", err)
	}

	return fsbridge.NewStorage(dotGitFS, opts.StorerCacheSize), scopedFS, nil
}

func newRepo(repo *git.Repository, opts *Options) (*Repo, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, WrapError(err, "failed to get worktree")
	}

	return &Repo{
		repo:     repo,
		worktree: worktree,
		fs:       opts.FS,
		options:  *opts,
	}, nil
}

// Signature represents an author/committer signature for commits.
type Signature struct {
	// Name is the author's or committer's name.
	Name string

	// Email is the author's or committer's email address.
	Email string

	// When is the timestamp for the signature.
	When time.Time
}

// CommitOpts configures commit creation behavior.
type CommitOpts struct {
	// AllowEmpty allows creating commits with no changes.
	AllowEmpty bool
}

// Repo represents a git repository and provides high-level operations.
// It wraps a go-git Repository and Worktree, operating exclusively through
// the project's native filesystem abstraction.
type Repo struct {
	repo     *git.Repository
	worktree *git.Worktree
	fs       fs.Filesystem
	options  Options
}
