// Package testutil builds minimal image headers for tests. The files are not
// decodable as pictures; they carry just enough structure for a header probe.
package testutil

import (
	"encoding/binary"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// MinimalJPEG returns SOI, APP0 (JFIF), SOF0 and EOI.
func MinimalJPEG(width, height uint16) []byte {
	jpeg := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x10, // APP0 segment (16 bytes)
		0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x01, 0x01, 0x00, 0x48, 0x00, 0x48, 0x00, 0x00, // JFIF header
		0xFF, 0xC0, 0x00, 0x0B, // SOF0 segment (11 bytes)
		0x08,       // Precision
		0x00, 0x00, // Height
		0x00, 0x00, // Width
		0x01,             // Components
		0x01, 0x11, 0x00, // Component 1: sampling, table
		0xFF, 0xD9, // EOI
	}
	binary.BigEndian.PutUint16(jpeg[25:27], height)
	binary.BigEndian.PutUint16(jpeg[27:29], width)
	return jpeg
}

// MinimalPNG returns the signature, IHDR and IEND.
func MinimalPNG(width, height uint32) []byte {
	png := []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG signature
		0x00, 0x00, 0x00, 0x0D, // IHDR chunk length (13)
		0x49, 0x48, 0x44, 0x52, // "IHDR"
		0x00, 0x00, 0x00, 0x00, // Width
		0x00, 0x00, 0x00, 0x00, // Height
		0x08,                   // Bit depth
		0x02,                   // Color type (RGB)
		0x00,                   // Compression
		0x00,                   // Filter
		0x00,                   // Interlace
		0x00, 0x00, 0x00, 0x00, // CRC (dummy)
		0x00, 0x00, 0x00, 0x00, // IEND chunk length
		0x49, 0x45, 0x4E, 0x44, // "IEND"
		0xAE, 0x42, 0x60, 0x82, // CRC
	}
	binary.BigEndian.PutUint32(png[16:20], width)
	binary.BigEndian.PutUint32(png[20:24], height)
	return png
}

// MinimalGIF returns a GIF89a header, one image descriptor and the trailer.
func MinimalGIF(width, height uint16) []byte {
	gif := []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // "GIF89a"
		0x00, 0x00, // Width
		0x00, 0x00, // Height
		0x80,             // Packed fields
		0x00,             // Background color
		0x00,             // Aspect ratio
		0x00, 0x00, 0x00, // Color table entry
		0xFF, 0xFF, 0xFF, // Color table entry
		0x2C,                                                 // Image separator
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Image descriptor
		0x02, 0x02, 0x44, 0x01, 0x00, // Image data
		0x3B, // Trailer
	}
	binary.LittleEndian.PutUint16(gif[6:8], width)
	binary.LittleEndian.PutUint16(gif[8:10], height)
	return gif
}

// MinimalBMP returns a file header and a BITMAPINFOHEADER. A negative height
// marks a top-down bitmap.
func MinimalBMP(width, height int32) []byte {
	bmp := []byte{
		0x42, 0x4D, // "BM"
		0x00, 0x00, 0x00, 0x00, // File size
		0x00, 0x00, // Reserved
		0x00, 0x00, // Reserved
		0x36, 0x00, 0x00, 0x00, // Offset to pixel data
		0x28, 0x00, 0x00, 0x00, // DIB header size (40)
		0x00, 0x00, 0x00, 0x00, // Width
		0x00, 0x00, 0x00, 0x00, // Height
		0x01, 0x00, // Planes
		0x18, 0x00, // Bits per pixel (24)
		0x00, 0x00, 0x00, 0x00, // Compression
		0x00, 0x00, 0x00, 0x00, // Image size
		0x00, 0x00, 0x00, 0x00, // X pixels per meter
		0x00, 0x00, 0x00, 0x00, // Y pixels per meter
		0x00, 0x00, 0x00, 0x00, // Colors used
		0x00, 0x00, 0x00, 0x00, // Important colors
	}
	binary.LittleEndian.PutUint32(bmp[2:6], uint32(len(bmp)))
	binary.LittleEndian.PutUint32(bmp[18:22], uint32(width))
	binary.LittleEndian.PutUint32(bmp[22:26], uint32(height))
	return bmp
}

// Padded returns data extended with zero bytes to exactly size bytes, so a
// test can choose the file size that feeds the bits-per-pixel ratio.
func Padded(data []byte, size int) []byte {
	if len(data) >= size {
		return data
	}
	out := make([]byte, size)
	copy(out, data)
	return out
}

// WriteFile writes data to name on fsys, creating parent directories.
func WriteFile(t *testing.T, fsys billy.Filesystem, name string, data []byte) {
	t.Helper()
	require.NoError(t, util.WriteFile(fsys, name, data, 0o644))
}
