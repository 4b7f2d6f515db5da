package probe

import (
	"encoding/binary"
	"fmt"
	"io"
)

// gifDimensions reads the logical screen size, which follows the 6-byte
// signature.
func gifDimensions(r io.Reader) (int, int, error) {
	// signature (6) + width (2) + height (2)
	var header [10]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, truncated("GIF logical screen descriptor", err)
	}

	if string(header[0:3]) != "GIF" || header[3] != 0x38 || (header[4] != 0x37 && header[4] != 0x39) || header[5] != 0x61 {
		return 0, 0, fmt.Errorf("%w: invalid GIF signature", ErrInvalidData)
	}

	width := binary.LittleEndian.Uint16(header[6:8])
	height := binary.LittleEndian.Uint16(header[8:10])

	return int(width), int(height), nil
}
