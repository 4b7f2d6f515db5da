// Package probe reads image dimensions from format headers without decoding
// pixel data. PNG, JPEG, GIF and BMP are recognized by their magic bytes.
package probe

// Format represents a supported image format.
type Format string

const (
	FormatUnknown Format = ""
	FormatJPEG    Format = "JPEG"
	FormatPNG     Format = "PNG"
	FormatGIF     Format = "GIF"
	FormatBMP     Format = "BMP"
)

// Info holds what a header probe learned about an image.
type Info struct {
	Format Format
	Width  int
	Height int
}

// Empty reports whether the image has no pixels.
func (i Info) Empty() bool {
	return i.Width <= 0 || i.Height <= 0
}
