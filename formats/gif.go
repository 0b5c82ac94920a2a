package formats

// SizeGIF reads the canvas dimensions from a GIF file's logical screen
// descriptor, which directly follows the 6-byte header. Both fields are
// 16-bit little-endian.
func SizeGIF(data []byte) (width, height int) {
	width = readU16LE(data, 6)
	height = readU16LE(data, 8)
	if width == 0 || height == 0 {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}
