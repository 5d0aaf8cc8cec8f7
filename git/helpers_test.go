package git

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fsb "github.com/eugenedong/arch-as-code/fs/billy"
)

// testRepo bundles a repository with its in-memory filesystem.
type testRepo struct {
	repo *Repo
	fs   *fsb.FS
	ctx  context.Context
}

var testSignature = Signature{
	Name:  "Test User",
	Email: "test@example.com",
	When:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

// setupTestRepo creates an empty repository on an in-memory filesystem.
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()

	ctx := context.Background()
	memFS := fsb.NewInMemoryFS()

	repo, err := Init(ctx, &Options{FS: memFS, Workdir: "."})
	require.NoError(t, err, "failed to initialize test repository")
	require.NotNil(t, repo, "repository should not be nil")

	return &testRepo{repo: repo, fs: memFS, ctx: ctx}
}

// setupTestRepoWithCommit creates a repository whose master branch holds one
// commit with test.txt.
func setupTestRepoWithCommit(t *testing.T) *testRepo {
	t.Helper()

	tr := setupTestRepo(t)
	tr.commitFile(t, "test.txt", "initial content")
	return tr
}

// commitFile writes content to name and commits it.
func (tr *testRepo) commitFile(t *testing.T, name, content string) string {
	t.Helper()

	require.NoError(t, tr.fs.WriteFile(name, []byte(content), 0o644), "failed to write %s", name)
	require.NoError(t, tr.repo.Add(tr.ctx, name), "failed to add %s", name)

	sha, err := tr.repo.Commit(tr.ctx, "update "+name, testSignature, CommitOpts{})
	require.NoError(t, err, "failed to commit %s", name)
	return sha
}

// currentBranch gets the current branch name.
func (tr *testRepo) currentBranch(t *testing.T) string {
	t.Helper()

	branch, err := tr.repo.CurrentBranch(tr.ctx)
	require.NoError(t, err, "failed to get current branch")
	return branch
}
