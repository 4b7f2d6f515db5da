package scan

import (
	"errors"
	"fmt"
)

// ErrPathInvalid matches every *PathInvalidError via errors.Is.
var ErrPathInvalid = errors.New("scan: invalid root path")

// PathReason says why a root path cannot be scanned.
type PathReason int

const (
	// PathMissing means the root does not exist or cannot be stat'ed.
	PathMissing PathReason = iota
	// PathNotDir means the root exists but is not a directory.
	PathNotDir
)

// PathInvalidError is returned by Scan when the root cannot be scanned at all.
type PathInvalidError struct {
	Path   string
	Reason PathReason
}

func (e *PathInvalidError) Error() string {
	if e.Reason == PathNotDir {
		return fmt.Sprintf("'%s' is not a directory.", e.Path)
	}
	return fmt.Sprintf("Directory '%s' does not exist.", e.Path)
}

func (e *PathInvalidError) Unwrap() error {
	return ErrPathInvalid
}
