package git

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billyfs "github.com/eugenedong/arch-as-code/fs/billy"
)

func TestInit_InMemory(t *testing.T) {
	ctx := context.Background()
	memFS := billyfs.NewInMemoryFS()

	repo, err := Init(ctx, &Options{FS: memFS})
	require.NoError(t, err)
	require.NotNil(t, repo)

	assert.NotNil(t, repo.repo)
	assert.NotNil(t, repo.worktree)
	assert.Equal(t, memFS, repo.fs)
	assert.Equal(t, DefaultWorkdir, repo.options.Workdir)
	assert.Equal(t, DefaultStorerCacheSize, repo.options.StorerCacheSize)

	ok, err := memFS.Exists(".git/HEAD")
	require.NoError(t, err)
	assert.True(t, ok, ".git/HEAD should exist")

	branch, err := repo.CurrentBranch(ctx)
	require.Error(t, err, "unborn HEAD has no branch yet")
	assert.Empty(t, branch)
}

func TestInit_Workdir(t *testing.T) {
	ctx := context.Background()
	memFS := billyfs.NewInMemoryFS()

	_, err := Init(ctx, &Options{FS: memFS, Workdir: "repos/product"})
	require.NoError(t, err)

	ok, err := memFS.Exists("repos/product/.git/HEAD")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "valid", opts: Options{FS: billyfs.NewInMemoryFS()}},
		{name: "missing FS", opts: Options{}, wantErr: true},
		{name: "negative cache", opts: Options{FS: billyfs.NewInMemoryFS(), StorerCacheSize: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRef)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInit_InvalidOptions(t *testing.T) {
	_, err := Init(context.Background(), &Options{})
	assert.ErrorIs(t, err, ErrInvalidRef)
}

func TestOpen(t *testing.T) {
	t.Run("existing repository", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)

		repo, err := Open(tr.ctx, &Options{FS: tr.fs})
		require.NoError(t, err)

		branch, err := repo.CurrentBranch(tr.ctx)
		require.NoError(t, err)
		assert.Equal(t, "master", branch)
	})

	t.Run("non-existent repository", func(t *testing.T) {
		_, err := Open(context.Background(), &Options{FS: billyfs.NewInMemoryFS()})
		assert.Error(t, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := Open(context.Background(), &Options{})
		assert.ErrorIs(t, err, ErrInvalidRef)
	})
}

func TestFindRoot(t *testing.T) {
	memFS := billyfs.NewInMemoryFS()
	_, err := Init(context.Background(), &Options{FS: memFS, Workdir: "work/repo"})
	require.NoError(t, err)
	require.NoError(t, memFS.MkdirAll("work/repo/products/acme", 0o755))

	tests := []struct {
		name    string
		start   string
		want    string
		wantErr bool
	}{
		{name: "repository root", start: "work/repo", want: "work/repo"},
		{name: "nested directory", start: "work/repo/products/acme", want: "work/repo"},
		{name: "trailing slash", start: "work/repo/products/", want: "work/repo"},
		{name: "outside repository", start: "work", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := FindRoot(memFS, tt.start)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotRepository)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, root)
		})
	}
}

func TestCommit(t *testing.T) {
	t.Run("returns sha", func(t *testing.T) {
		tr := setupTestRepo(t)
		sha := tr.commitFile(t, "a.txt", "a")
		assert.Len(t, sha, 40)
	})

	t.Run("nothing staged", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		_, err := tr.repo.Commit(tr.ctx, "empty", testSignature, CommitOpts{})
		assert.ErrorIs(t, err, ErrEmptyCommit)
	})

	t.Run("allow empty", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		sha, err := tr.repo.Commit(tr.ctx, "empty", testSignature, CommitOpts{AllowEmpty: true})
		require.NoError(t, err)
		assert.NotEmpty(t, sha)
	})

	t.Run("missing message", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		_, err := tr.repo.Commit(tr.ctx, "", testSignature, CommitOpts{AllowEmpty: true})
		assert.ErrorIs(t, err, ErrInvalidRef)
	})

	t.Run("missing signature", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		_, err := tr.repo.Commit(tr.ctx, "msg", Signature{}, CommitOpts{AllowEmpty: true})
		assert.ErrorIs(t, err, ErrInvalidRef)
	})
}

func TestAdd_Glob(t *testing.T) {
	tr := setupTestRepoWithCommit(t)
	require.NoError(t, tr.fs.WriteFile("a.yml", []byte("a"), 0o644))
	require.NoError(t, tr.fs.WriteFile("b.yml", []byte("b"), 0o644))

	require.NoError(t, tr.repo.Add(tr.ctx, "*.yml", "missing.txt"))

	status, err := tr.repo.worktree.Status()
	require.NoError(t, err)
	assert.Len(t, status, 2)
}

// isolateGlobalConfig points git's global configuration lookup at an empty
// directory so the host's identity does not leak into tests.
func isolateGlobalConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
}

func TestAuthor(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		config  string
		want    Signature
		wantErr error
	}{
		{
			name:   "user section",
			config: "[user]\n\tname = Ada\n\temail = ada@example.com\n",
			want:   Signature{Name: "Ada", Email: "ada@example.com", When: when},
		},
		{
			name:   "author overrides user",
			config: "[user]\n\tname = Ada\n\temail = ada@example.com\n[author]\n\tname = Grace\n",
			want:   Signature{Name: "Grace", Email: "ada@example.com", When: when},
		},
		{
			name:    "no identity",
			config:  "[core]\n\tbare = false\n",
			wantErr: ErrNoIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateGlobalConfig(t)
			tr := setupTestRepoWithCommit(t)
			require.NoError(t, tr.fs.WriteFile(".git/config", []byte(tt.config), 0o644))

			got, err := tr.repo.Author(when)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
