package fsbridge

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eugenedong/arch-as-code/fs"
	"github.com/eugenedong/arch-as-code/fs/billy"
)

func TestToBillyFilesystem(t *testing.T) {
	t.Run("success with billy.FS", func(t *testing.T) {
		memFS := memfs.New()

		result, err := ToBillyFilesystem(billy.NewFS(memFS))
		require.NoError(t, err)
		assert.Equal(t, memFS, result)
	})

	t.Run("error with non-billy.FS", func(t *testing.T) {
		var other fs.Filesystem = &otherFilesystem{}

		result, err := ToBillyFilesystem(other)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "filesystem must be a billy.FS")
	})
}

// otherFilesystem satisfies fs.Filesystem without being a billy.FS.
type otherFilesystem struct{}

func (otherFilesystem) ReadFile(string) ([]byte, error) { return nil, nil }

func (otherFilesystem) Exists(string) (bool, error) { return false, nil }

func (otherFilesystem) Stat(string) (os.FileInfo, error) { return nil, nil }

func (otherFilesystem) WriteFile(string, []byte, os.FileMode) error { return nil }

func (otherFilesystem) MkdirAll(string, os.FileMode) error { return nil }
