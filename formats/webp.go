package formats

// SizeWebP reads the dimensions of a WebP file from whichever payload chunk
// follows the RIFF header. The chunk tag at offset 12 selects between the
// extended (VP8X), lossless (VP8L) and lossy (VP8) layouts; anything else
// yields the fallback dimensions.
func SizeWebP(data []byte) (width, height int) {
	tag := string([]byte{byteAt(data, 12), byteAt(data, 13), byteAt(data, 14), byteAt(data, 15)})

	switch tag {
	case "VP8X":
		// The extended header stores width-1 and height-1 as 24-bit
		// little-endian fields.
		return readU24LE(data, 24) + 1, readU24LE(data, 27) + 1

	case "VP8L":
		// The lossless bitstream packs width-1 and height-1 into two
		// 14-bit fields right after the one-byte signature.
		b0 := int(byteAt(data, 21))
		b1 := int(byteAt(data, 22))
		b2 := int(byteAt(data, 23))
		b3 := int(byteAt(data, 24))
		width = ((b0 | b1<<8) & 0x3FFF) + 1
		height = ((b1>>6 | b2<<2 | b3<<10) & 0x3FFF) + 1
		return width, height

	case "VP8 ":
		// The lossy key frame header stores 14-bit dimensions as
		// little-endian 16-bit values.
		return readU16LE(data, 26) & 0x3FFF, readU16LE(data, 28) & 0x3FFF
	}

	return FallbackWidth, FallbackHeight
}
