package git

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileAt(t *testing.T) {
	tr := setupTestRepo(t)
	tr.commitFile(t, "products/acme/product-architecture.yml", "name: base\n")
	require.NoError(t, tr.repo.CheckoutBranch(tr.ctx, "feature", true, false))
	tr.commitFile(t, "products/acme/product-architecture.yml", "name: feature\n")

	// Uncommitted changes never leak into a snapshot.
	require.NoError(t, tr.fs.WriteFile("products/acme/product-architecture.yml", []byte("name: dirty\n"), 0o644))

	tests := []struct {
		name    string
		rev     string
		file    string
		want    string
		wantErr error
	}{
		{name: "base branch", rev: "master", file: "products/acme/product-architecture.yml", want: "name: base\n"},
		{name: "current branch", rev: "feature", file: "products/acme/product-architecture.yml", want: "name: feature\n"},
		{name: "leading dot slash", rev: "master", file: "./products/acme/product-architecture.yml", want: "name: base\n"},
		{name: "unknown branch", rev: "nope", file: "products/acme/product-architecture.yml", wantErr: ErrResolveFailed},
		{name: "missing file", rev: "master", file: "products/other/product-architecture.yml", wantErr: ErrFileMissing},
		{name: "directory", rev: "master", file: "products/acme", wantErr: ErrFileMissing},
		{name: "empty path", rev: "master", file: "", wantErr: ErrInvalidRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tr.repo.ReadFileAt(tr.ctx, tt.rev, tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestReadFileAt_Logs(t *testing.T) {
	var buf bytes.Buffer
	tr := setupTestRepoWithCommit(t)
	tr.repo.options.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := tr.repo.ReadFileAt(tr.ctx, "master", "test.txt")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "read file at revision")
	assert.Contains(t, buf.String(), "file=test.txt")
}

func TestReadFileAt_Cancelled(t *testing.T) {
	tr := setupTestRepoWithCommit(t)
	ctx, cancel := context.WithCancel(tr.ctx)
	cancel()

	_, err := tr.repo.ReadFileAt(ctx, "master", "test.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
