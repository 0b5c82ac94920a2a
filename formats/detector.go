package formats

// Detect identifies the image format by examining the magic bytes.
// It looks at no more than the first 12 bytes of data and returns "jpeg",
// "png", "gif", "webp" or "avif", or an empty string if the format is not
// recognized. Buffers shorter than 12 bytes are safe: missing bytes never
// match a signature, so they fall through to unrecognized.
func Detect(data []byte) string {
	// JPEG: FF D8 FF
	if byteAt(data, 0) == 0xFF && byteAt(data, 1) == 0xD8 && byteAt(data, 2) == 0xFF {
		return "jpeg"
	}

	// PNG: 89 50 4E 47
	if byteAt(data, 0) == 0x89 && byteAt(data, 1) == 0x50 &&
		byteAt(data, 2) == 0x4E && byteAt(data, 3) == 0x47 {
		return "png"
	}

	// GIF: "GIF8" (covers GIF87a and GIF89a)
	if byteAt(data, 0) == 0x47 && byteAt(data, 1) == 0x49 &&
		byteAt(data, 2) == 0x46 && byteAt(data, 3) == 0x38 {
		return "gif"
	}

	// WebP: "RIFF" container with "WEBP" at offset 8
	if byteAt(data, 0) == 0x52 && byteAt(data, 1) == 0x49 &&
		byteAt(data, 2) == 0x46 && byteAt(data, 3) == 0x46 &&
		byteAt(data, 8) == 0x57 && byteAt(data, 9) == 0x45 &&
		byteAt(data, 10) == 0x42 && byteAt(data, 11) == 0x50 {
		return "webp"
	}

	// AVIF: ISO-BMFF "ftyp" box at offset 4 with an avif or avis brand
	if byteAt(data, 4) == 0x66 && byteAt(data, 5) == 0x74 &&
		byteAt(data, 6) == 0x79 && byteAt(data, 7) == 0x70 {
		brand := string([]byte{byteAt(data, 8), byteAt(data, 9), byteAt(data, 10), byteAt(data, 11)})
		if brand == "avif" || brand == "avis" {
			return "avif"
		}
	}

	return ""
}
