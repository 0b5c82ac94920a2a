package formats

// SizeJPEG scans the marker segments of a JPEG file for a start-of-frame
// marker and returns the frame dimensions. Stray fill bytes between segments
// are tolerated by advancing one byte at a time until the next 0xFF prefix.
// If the scan exhausts the buffer without finding a start-of-frame marker,
// the fallback dimensions are returned.
func SizeJPEG(data []byte) (width, height int) {
	off := 2
	for off < len(data)-1 {
		if data[off] != 0xFF {
			off++
			continue
		}

		marker := data[off+1]
		if isSOFMarker(marker) {
			height = readU16BE(data, off+5)
			width = readU16BE(data, off+7)
			if width == 0 || height == 0 {
				return FallbackWidth, FallbackHeight
			}
			return width, height
		}

		// Not a frame header: skip the whole segment. The length field
		// follows the marker byte and counts itself but not the marker.
		off += 2 + readU16BE(data, off+2)
	}

	return FallbackWidth, FallbackHeight
}

// isSOFMarker reports whether marker is a start-of-frame marker. 0xC4 (DHT),
// 0xC8 (reserved JPG) and 0xCC (DAC) sit inside the SOF range but carry no
// frame header.
func isSOFMarker(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	return marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}
