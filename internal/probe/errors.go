package probe

import "errors"

var (
	// ErrUnsupportedFormat is returned when the image format cannot be detected.
	ErrUnsupportedFormat = errors.New("probe: unsupported format")

	// ErrFormatMismatch is returned by ProbeFile when the content of a file is
	// not in the format its extension names.
	ErrFormatMismatch = errors.New("probe: content does not match extension")

	// ErrInvalidData indicates a malformed or truncated header.
	ErrInvalidData = errors.New("probe: invalid data")
)
