package cattopic

import "strings"

// DefaultMaxFileSize is the upload size cap applied when a caller does not
// configure one.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"avif": "image/avif",
}

var extensions = map[string]string{
	"jpeg": "jpg",
	"jpg":  "jpg",
	"png":  "png",
	"gif":  "gif",
	"webp": "webp",
	"avif": "avif",
}

// ContentType returns the MIME type for a format key, or a generic binary
// type for anything unrecognized.
func ContentType(format string) string {
	if ct, ok := contentTypes[strings.ToLower(format)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Extension returns the file extension for a format key. Unrecognized keys
// come back unchanged so callers can pass arbitrary extensions through.
func Extension(format string) string {
	if ext, ok := extensions[strings.ToLower(format)]; ok {
		return ext
	}
	return format
}

// IsSupportedFormat reports whether format names one of the supported image
// formats. The check is case-insensitive.
func IsSupportedFormat(format string) bool {
	_, ok := contentTypes[strings.ToLower(format)]
	return ok
}

// IsValidFileSize reports whether size fits under maxSize. A maxSize of zero
// or less applies DefaultMaxFileSize.
func IsValidFileSize(size, maxSize int64) bool {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return size <= maxSize
}
