package fsbridge

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// minCacheSize is used when a non-positive cache size is requested.
const minCacheSize = 100

// NewStorage creates git object storage on billyFS with an LRU object cache
// of cacheSize entries.
func NewStorage(billyFS billy.Filesystem, cacheSize int) *filesystem.Storage {
	if cacheSize <= 0 {
		cacheSize = minCacheSize
	}

	objCache := cache.NewObjectLRU(cache.FileSize(cacheSize))
	return filesystem.NewStorage(billyFS, objCache)
}
