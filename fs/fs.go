// Package fs defines the filesystem abstraction through which product
// directories, architecture documents and git repositories are accessed.
// Implementations live in subpackages; fs/billy backs it with go-billy so the
// same code runs against the OS or an in-memory tree.
package fs

import "os"

// ReadFS is the read-only view used by loaders.
type ReadFS interface {
	// ReadFile returns the full contents of the named file.
	ReadFile(path string) ([]byte, error)

	// Exists reports whether path exists. A missing path is not an error.
	Exists(path string) (bool, error)

	// Stat returns file information for name.
	Stat(name string) (os.FileInfo, error)
}

// Filesystem is a ReadFS that can also be written to.
type Filesystem interface {
	ReadFS

	// WriteFile writes data to filename, creating or truncating it.
	WriteFile(filename string, data []byte, perm os.FileMode) error

	// MkdirAll creates path along with any missing parents.
	MkdirAll(path string, perm os.FileMode) error
}
