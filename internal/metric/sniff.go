package metric

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
)

// sniff names the content type of a file whose header could not be probed,
// so a diagnostic can tell a mislabelled file from a truncated image.
func sniff(fsys billy.Filesystem, path string) string {
	f, err := fsys.Open(path)
	if err != nil {
		return "unknown"
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil || mt == nil {
		return "unknown"
	}
	return mt.String()
}
