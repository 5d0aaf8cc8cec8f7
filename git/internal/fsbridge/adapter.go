// Package fsbridge adapts the project's fs.Filesystem to the billy.Filesystem
// and storage types go-git expects.
package fsbridge

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/eugenedong/arch-as-code/fs"
	fsb "github.com/eugenedong/arch-as-code/fs/billy"
)

// ToBillyFilesystem unwraps fsys, which must come from the fs/billy package.
//
//nolint:ireturn // go-git consumes billy.Filesystem directly
func ToBillyFilesystem(fsys fs.Filesystem) (billy.Filesystem, error) {
	billyFS, ok := fsys.(*fsb.FS)
	if !ok {
		return nil, fmt.Errorf("filesystem must be a billy.FS from fs/billy package, got %T", fsys)
	}
	return billyFS.Raw(), nil
}
