package probe

import (
	"encoding/binary"
	"fmt"
	"io"
)

// pngDimensions reads the IHDR chunk, which PNG requires to come first.
func pngDimensions(r io.Reader) (int, int, error) {
	// signature (8) + chunk length (4) + chunk type (4) + width (4) + height (4)
	var header [24]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, truncated("PNG header", err)
	}

	if !hasPrefix(header[:], pngSignature[:]) {
		return 0, 0, fmt.Errorf("%w: invalid PNG signature", ErrInvalidData)
	}

	length := binary.BigEndian.Uint32(header[8:12])
	if string(header[12:16]) != "IHDR" || length < 13 {
		return 0, 0, fmt.Errorf("%w: first PNG chunk is not IHDR", ErrInvalidData)
	}

	width := binary.BigEndian.Uint32(header[16:20])
	height := binary.BigEndian.Uint32(header[20:24])

	return int(width), int(height), nil
}
