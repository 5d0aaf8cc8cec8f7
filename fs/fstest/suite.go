// Package fstest provides a conformance suite for fs.Filesystem
// implementations.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() fs.Filesystem {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"bytes"
	"testing"

	"github.com/eugenedong/arch-as-code/fs"
)

// TestSuite runs all conformance tests against a filesystem. newFS must
// return a fresh, empty filesystem on every call.
func TestSuite(t *testing.T, newFS func() fs.Filesystem) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS())
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS())
	})
}

// TestReadFS tests ReadFile, Exists and Stat.
func TestReadFS(t *testing.T, filesystem fs.Filesystem) {
	content := []byte("name: Bookstore\n")

	if err := filesystem.MkdirAll("products/bookstore", 0o755); err != nil {
		t.Fatalf("MkdirAll(products/bookstore): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("products/bookstore/product-architecture.yml", content, 0o644); err != nil {
		t.Fatalf("WriteFile(product-architecture.yml): setup failed: %v", err)
	}

	t.Run("ReadFile", func(t *testing.T) {
		got, err := filesystem.ReadFile("products/bookstore/product-architecture.yml")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("ReadFile(): got %q, want %q", got, content)
		}
	})

	t.Run("ReadFileNotExist", func(t *testing.T) {
		if _, err := filesystem.ReadFile("products/bookstore/missing.yml"); err == nil {
			t.Error("ReadFile(missing.yml): got nil error, want error")
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("products/bookstore/product-architecture.yml")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Error("Stat(): IsDir() = true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(): Size() = %d, want %d", info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("products/bookstore")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat(): IsDir() = false, want true")
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for path, want := range map[string]bool{
			"products/bookstore/product-architecture.yml": true,
			"products/bookstore":                          true,
			"products/other":                              false,
		} {
			got, err := filesystem.Exists(path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", path, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", path, got, want)
			}
		}
	})
}

// TestWriteFS tests WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		name := "architecture-update.yml"
		if err := filesystem.WriteFile(name, []byte("name: a long first version\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(): got error %v, want nil", err)
		}
		if err := filesystem.WriteFile(name, []byte("name: b\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(): got error %v, want nil", err)
		}
		got, err := filesystem.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if string(got) != "name: b\n" {
			t.Errorf("ReadFile(): got %q, want %q", got, "name: b\n")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("architecture-updates/search/notes", 0o755); err != nil {
			t.Fatalf("MkdirAll(): got error %v, want nil", err)
		}
		for _, dir := range []string{"architecture-updates", "architecture-updates/search", "architecture-updates/search/notes"} {
			info, err := filesystem.Stat(dir)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", dir, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", dir)
			}
		}
		if err := filesystem.MkdirAll("architecture-updates/search", 0o755); err != nil {
			t.Errorf("MkdirAll() on existing directory: got error %v, want nil", err)
		}
	})
}
