package formats

// Fallback dimensions reported when a file's structure cannot be parsed far
// enough to find the real ones. Dimension metadata is advisory, so damaged
// files degrade to a plausible default instead of an error.
const (
	FallbackWidth  = 1920
	FallbackHeight = 1080
)

// Dimensions returns the pixel width and height of data in the given format.
// It never fails: unrecognized formats and malformed or truncated structures
// yield the fallback dimensions.
func Dimensions(format string, data []byte) (width, height int) {
	switch format {
	case "jpeg":
		return SizeJPEG(data)
	case "png":
		return SizePNG(data)
	case "gif":
		return SizeGIF(data)
	case "webp":
		return SizeWebP(data)
	case "avif":
		return SizeAVIF(data)
	default:
		return FallbackWidth, FallbackHeight
	}
}

// byteAt reads one byte, treating positions outside data as 0x00. Every
// multi-byte read goes through it, so no offset can cause a panic.
func byteAt(data []byte, off int) byte {
	if off < 0 || off >= len(data) {
		return 0
	}
	return data[off]
}

func readU16BE(data []byte, off int) int {
	return int(byteAt(data, off))<<8 | int(byteAt(data, off+1))
}

func readU32BE(data []byte, off int) int {
	return int(byteAt(data, off))<<24 | int(byteAt(data, off+1))<<16 |
		int(byteAt(data, off+2))<<8 | int(byteAt(data, off+3))
}

func readU16LE(data []byte, off int) int {
	return int(byteAt(data, off)) | int(byteAt(data, off+1))<<8
}

func readU24LE(data []byte, off int) int {
	return int(byteAt(data, off)) | int(byteAt(data, off+1))<<8 |
		int(byteAt(data, off+2))<<16
}
