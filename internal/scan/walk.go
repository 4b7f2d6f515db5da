package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// unlimited disables the depth limit of walk.
const unlimited = -1

// visitFunc receives every entry below the root together with its Lstat info.
type visitFunc func(path string, info os.FileInfo) error

// walk visits the entries below root depth-first, in lexical order within each
// directory. Direct children of root are at depth 1; directories at maxDepth
// are not opened. Directories that cannot be read are skipped. Only an error
// returned by fn stops the walk.
func walk(fsys billy.Filesystem, root string, maxDepth int, log *zap.Logger, fn visitFunc) error {
	return walkDir(fsys, root, 1, maxDepth, log, fn)
}

func walkDir(fsys billy.Filesystem, dir string, depth, maxDepth int, log *zap.Logger, fn visitFunc) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		log.Debug("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := fn(path, entry); err != nil {
			return err
		}

		// Symlinked directories are not followed.
		if !entry.IsDir() || entry.Mode()&os.ModeSymlink != 0 {
			continue
		}
		if maxDepth != unlimited && depth >= maxDepth {
			continue
		}
		if err := walkDir(fsys, path, depth+1, maxDepth, log, fn); err != nil {
			return err
		}
	}
	return nil
}
