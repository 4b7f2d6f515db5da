package probe

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// ProbeFile opens name on fsys, reads its header, and closes it again. When
// the extension of name implies a format, the content must be in that format;
// otherwise ErrFormatMismatch is returned.
//
// Example:
//
//	info, err := probe.ProbeFile(osfs.New(""), "image.jpg")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s %dx%d\n", info.Format, info.Width, info.Height)
func ProbeFile(fsys billy.Filesystem, name string) (Info, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := Probe(file)
	if err != nil {
		return Info{}, err
	}
	if want := FormatForName(name); want != FormatUnknown && info.Format != want {
		return Info{}, fmt.Errorf("%w: %s content in %s", ErrFormatMismatch, info.Format, name)
	}
	return info, nil
}

// Probe detects the format of r from its magic bytes and reads the image
// dimensions from the header. Only as many bytes as the header needs are read.
func Probe(r io.ReadSeeker) (Info, error) {
	var magicBytes [magicLen]byte
	n, err := io.ReadFull(r, magicBytes[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Info{}, fmt.Errorf("failed to read file header: %w", err)
	}

	format := Detect(magicBytes[:n])
	if format == FormatUnknown {
		return Info{}, ErrUnsupportedFormat
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("failed to seek reader: %w", err)
	}

	var width, height int
	switch format {
	case FormatJPEG:
		width, height, err = jpegDimensions(r)
	case FormatPNG:
		width, height, err = pngDimensions(r)
	case FormatGIF:
		width, height, err = gifDimensions(r)
	case FormatBMP:
		width, height, err = bmpDimensions(r)
	}
	if err != nil {
		return Info{}, fmt.Errorf("failed to read %s header: %w", format, err)
	}

	return Info{Format: format, Width: width, Height: height}, nil
}

// truncated maps short reads to ErrInvalidData so callers see one error for
// every kind of broken header.
func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s", ErrInvalidData, what)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}
