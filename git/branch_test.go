package git

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurrentBranch tests getting the current branch
func TestCurrentBranch(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) *testRepo
		validate func(t *testing.T, branch string, err error)
	}{
		{
			name:  "default branch after commit",
			setup: setupTestRepoWithCommit,
			validate: func(t *testing.T, branch string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "master", branch)
			},
		},
		{
			name: "detached HEAD state",
			setup: func(t *testing.T) *testRepo {
				tr := setupTestRepoWithCommit(t)

				head, err := tr.repo.repo.Head()
				require.NoError(t, err)

				err = tr.repo.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, head.Hash()))
				require.NoError(t, err)

				return tr
			},
			validate: func(t *testing.T, branch string, err error) {
				assert.ErrorIs(t, err, ErrResolveFailed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.setup(t)
			branch, err := tr.repo.CurrentBranch(tr.ctx)
			tt.validate(t, branch, err)
		})
	}
}

// TestCreateBranch tests branch creation
func TestCreateBranch(t *testing.T) {
	tests := []struct {
		name       string
		branchName string
		startRev   string
		force      bool
		existing   bool
		wantErr    error
	}{
		{name: "from HEAD", branchName: "feature", startRev: "HEAD"},
		{name: "from branch", branchName: "feature", startRev: "master"},
		{name: "empty name", branchName: "", startRev: "HEAD", wantErr: ErrInvalidRef},
		{name: "empty start", branchName: "feature", startRev: "", wantErr: ErrInvalidRef},
		{name: "unknown start", branchName: "feature", startRev: "nope", wantErr: ErrResolveFailed},
		{name: "already exists", branchName: "feature", startRev: "HEAD", existing: true, wantErr: ErrBranchExists},
		{name: "force overwrite", branchName: "feature", startRev: "HEAD", existing: true, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := setupTestRepoWithCommit(t)
			if tt.existing {
				require.NoError(t, tr.repo.CreateBranch(tr.ctx, tt.branchName, "HEAD", false))
			}

			err := tr.repo.CreateBranch(tr.ctx, tt.branchName, tt.startRev, tt.force)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			branches, err := tr.repo.Branches(tr.ctx)
			require.NoError(t, err)
			assert.Contains(t, branches, tt.branchName)
		})
	}
}

// TestCheckoutBranch tests switching branches
func TestCheckoutBranch(t *testing.T) {
	t.Run("existing branch", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		require.NoError(t, tr.repo.CreateBranch(tr.ctx, "feature", "HEAD", false))

		require.NoError(t, tr.repo.CheckoutBranch(tr.ctx, "feature", false, false))
		assert.Equal(t, "feature", tr.currentBranch(t))
	})

	t.Run("missing branch", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)

		err := tr.repo.CheckoutBranch(tr.ctx, "feature", false, false)
		assert.ErrorIs(t, err, ErrBranchMissing)
		assert.Equal(t, "master", tr.currentBranch(t))
	})

	t.Run("create if missing", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)

		require.NoError(t, tr.repo.CheckoutBranch(tr.ctx, "feature", true, false))
		assert.Equal(t, "feature", tr.currentBranch(t))
	})

	t.Run("empty name", func(t *testing.T) {
		tr := setupTestRepoWithCommit(t)
		assert.ErrorIs(t, tr.repo.CheckoutBranch(tr.ctx, "", true, false), ErrInvalidRef)
	})
}

func TestResolve(t *testing.T) {
	tr := setupTestRepoWithCommit(t)
	head, err := tr.repo.repo.Head()
	require.NoError(t, err)

	tests := []struct {
		name          string
		rev           string
		wantCanonical string
		wantErr       error
	}{
		{name: "branch", rev: "master", wantCanonical: "refs/heads/master"},
		{name: "HEAD", rev: "HEAD", wantCanonical: "HEAD"},
		{name: "hash", rev: head.Hash().String(), wantCanonical: head.Hash().String()},
		{name: "unknown", rev: "missing", wantErr: ErrResolveFailed},
		{name: "empty", rev: "", wantErr: ErrInvalidRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := tr.repo.Resolve(tr.ctx, tt.rev)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, head.Hash().String(), ref.Hash)
			assert.Equal(t, tt.wantCanonical, ref.CanonicalName)
		})
	}
}

func TestCheckoutBranch_CreateKeepsLocalChanges(t *testing.T) {
	tr := setupTestRepoWithCommit(t)
	require.NoError(t, tr.fs.WriteFile("test.txt", []byte("edited"), 0o644))
	require.NoError(t, tr.fs.WriteFile("new.txt", []byte("new"), 0o644))

	require.NoError(t, tr.repo.CheckoutBranch(tr.ctx, "search", true, false))
	assert.Equal(t, "search", tr.currentBranch(t))

	data, err := tr.fs.ReadFile("test.txt")
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))

	ok, err := tr.fs.Exists("new.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBranches(t *testing.T) {
	tr := setupTestRepoWithCommit(t)
	require.NoError(t, tr.repo.CreateBranch(tr.ctx, "release", "HEAD", false))
	require.NoError(t, tr.repo.CreateBranch(tr.ctx, "feature", "master", false))

	branches, err := tr.repo.Branches(tr.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"feature", "master", "release"}, branches)
}
