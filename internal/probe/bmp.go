package probe

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	bmpFileHeaderSize = 14
	bmpCoreHeaderSize = 12 // BITMAPCOREHEADER (OS/2 1.x)
	bmpInfoHeaderSize = 40 // BITMAPINFOHEADER and every later version
)

// bmpDimensions reads the DIB header that follows the 14-byte file header.
func bmpDimensions(r io.Reader) (int, int, error) {
	// file header (14) + DIB size (4) + the larger of the two dimension layouts (8)
	var header [bmpFileHeaderSize + 12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, truncated("BMP header", err)
	}

	if !hasPrefix(header[:], bmpSignature[:]) {
		return 0, 0, fmt.Errorf("%w: invalid BMP signature", ErrInvalidData)
	}

	dib := header[bmpFileHeaderSize:]
	dibSize := binary.LittleEndian.Uint32(dib[0:4])

	var width, height int
	switch {
	case dibSize == bmpCoreHeaderSize:
		width = int(int16(binary.LittleEndian.Uint16(dib[4:6])))
		height = int(int16(binary.LittleEndian.Uint16(dib[6:8])))
	case dibSize >= bmpInfoHeaderSize:
		width = int(int32(binary.LittleEndian.Uint32(dib[4:8])))
		height = int(int32(binary.LittleEndian.Uint32(dib[8:12])))
	default:
		return 0, 0, fmt.Errorf("%w: unsupported DIB header size %d", ErrInvalidData, dibSize)
	}

	if width < 0 {
		return 0, 0, fmt.Errorf("%w: negative BMP width %d", ErrInvalidData, width)
	}

	// Height can be negative (top-down DIB)
	if height < 0 {
		height = -height
	}

	return width, height, nil
}
