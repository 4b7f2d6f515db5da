package probe

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	markerSOI = 0xD8
	markerEOI = 0xD9
	markerSOS = 0xDA
	markerTEM = 0x01
)

// isSOF reports whether marker starts a frame header. C4 (DHT), C8 (JPG) and
// CC (DAC) share the range but carry no dimensions.
func isSOF(marker byte) bool {
	switch marker {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	}
	return false
}

// jpegDimensions walks the marker segments up to the first frame header.
func jpegDimensions(r io.ReadSeeker) (int, int, error) {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return 0, 0, truncated("JPEG header", err)
	}

	// Verify JPEG SOI marker
	if soi[0] != 0xFF || soi[1] != markerSOI {
		return 0, 0, fmt.Errorf("%w: invalid JPEG file", ErrInvalidData)
	}

	var marker [2]byte
	for {
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return 0, 0, truncated("JPEG marker", err)
		}
		if marker[0] != 0xFF {
			return 0, 0, fmt.Errorf("%w: expected marker, found 0x%02X", ErrInvalidData, marker[0])
		}

		markerType := marker[1]

		// Skip fill bytes (0xFF)
		for markerType == 0xFF {
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return 0, 0, truncated("JPEG marker", err)
			}
			markerType = marker[1]
		}

		switch {
		case markerType == markerEOI, markerType == markerSOS:
			return 0, 0, fmt.Errorf("%w: no frame header before 0x%02X", ErrInvalidData, markerType)
		case markerType == markerTEM, markerType >= 0xD0 && markerType <= 0xD7:
			// Standalone markers have no length
			continue
		}

		var lengthBytes [2]byte
		if _, err := io.ReadFull(r, lengthBytes[:]); err != nil {
			return 0, 0, truncated("JPEG segment length", err)
		}
		length := int(binary.BigEndian.Uint16(lengthBytes[:])) - 2
		if length < 0 {
			return 0, 0, fmt.Errorf("%w: segment length %d", ErrInvalidData, length+2)
		}

		if !isSOF(markerType) {
			if _, err := r.Seek(int64(length), io.SeekCurrent); err != nil {
				return 0, 0, fmt.Errorf("failed to skip JPEG segment: %w", err)
			}
			continue
		}

		// precision (1) + height (2) + width (2)
		if length < 5 {
			return 0, 0, fmt.Errorf("%w: short frame header", ErrInvalidData)
		}
		var sof [5]byte
		if _, err := io.ReadFull(r, sof[:]); err != nil {
			return 0, 0, truncated("JPEG frame header", err)
		}

		height := binary.BigEndian.Uint16(sof[1:3])
		width := binary.BigEndian.Uint16(sof[3:5])

		return int(width), int(height), nil
	}
}
