package scan

import "strings"

var supportedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"bmp":  {},
	"gif":  {},
}

// Supported reports whether the file name carries one of the image
// extensions the scanner measures, ignoring case.
func Supported(name string) bool {
	ext := extension(name)
	if ext == "" {
		return false
	}
	_, ok := supportedExtensions[strings.ToLower(ext)]
	return ok
}

// extension returns the text after the last dot of name. A leading dot
// starts a hidden name, not an extension, so ".png" has none.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
