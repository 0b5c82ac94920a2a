package formats

// SizeAVIF walks the ISO-BMFF box structure of an AVIF file looking for the
// "ispe" (image spatial extents) property. The property nests inside
// meta > iprp > ipco, but the nesting is shallow enough to flatten into a
// single forward scan: container boxes are entered by stepping over just
// their header, every other box is skipped whole.
func SizeAVIF(data []byte) (width, height int) {
	off := 0
	for off+8 <= len(data) {
		boxSize := readU32BE(data, off)
		if boxSize == 0 {
			// A zero size means "extends to end of file"; not worth
			// supporting for a property lookup.
			break
		}
		boxType := string(data[off+4 : off+8])

		switch boxType {
		case "ispe":
			width = readU32BE(data, off+12)
			height = readU32BE(data, off+16)
			if width == 0 || height == 0 {
				return FallbackWidth, FallbackHeight
			}
			return width, height

		case "meta":
			// meta is a full box: a 4-byte version/flags field follows
			// the usual size and type.
			off += 12

		case "iprp", "ipco":
			off += 8

		default:
			off += boxSize
		}
	}

	return FallbackWidth, FallbackHeight
}
