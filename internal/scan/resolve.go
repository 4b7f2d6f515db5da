package scan

import "path/filepath"

// Resolver turns a walked path into the absolute form that is reported.
type Resolver func(path string) (string, error)

// Canonical returns the absolute, symlink-free form of path on the host
// filesystem. It fails if the path no longer exists.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
