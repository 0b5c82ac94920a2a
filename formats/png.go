package formats

// SizePNG reads the dimensions from a PNG file's IHDR chunk. IHDR is
// required to be the first chunk after the 8-byte signature, so the width
// and height fields always sit at offsets 16 and 20.
func SizePNG(data []byte) (width, height int) {
	width = readU32BE(data, 16)
	height = readU32BE(data, 20)
	if width == 0 || height == 0 {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}
