package probe

import (
	"path/filepath"
	"strings"
)

var (
	pngSignature = [...]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gifSignature = [...]byte{0x47, 0x49, 0x46, 0x38} // "GIF8"
	bmpSignature = [...]byte{0x42, 0x4D}             // "BM"
)

// magicLen is the number of leading bytes Detect needs to tell every
// supported format apart.
const magicLen = 8

// Detect identifies the image format by examining the magic bytes.
// It returns FormatUnknown if the format is not recognized.
func Detect(magicBytes []byte) Format {
	if len(magicBytes) < 2 {
		return FormatUnknown
	}

	// JPEG: FF D8 FF
	if len(magicBytes) >= 3 && magicBytes[0] == 0xFF && magicBytes[1] == 0xD8 && magicBytes[2] == 0xFF {
		return FormatJPEG
	}

	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if hasPrefix(magicBytes, pngSignature[:]) {
		return FormatPNG
	}

	// GIF: GIF87a or GIF89a
	if len(magicBytes) >= 6 && hasPrefix(magicBytes, gifSignature[:]) &&
		(magicBytes[4] == 0x37 || magicBytes[4] == 0x39) && magicBytes[5] == 0x61 {
		return FormatGIF
	}

	if hasPrefix(magicBytes, bmpSignature[:]) {
		return FormatBMP
	}

	return FormatUnknown
}

// FormatForName returns the format implied by the extension of name, ignoring
// case, or FormatUnknown when the extension names none of the supported formats.
func FormatForName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".png":
		return FormatPNG
	case ".gif":
		return FormatGIF
	case ".bmp":
		return FormatBMP
	}
	return FormatUnknown
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if buf[i] != b {
			return false
		}
	}
	return true
}
