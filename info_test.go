package cattopic

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalPNG builds a PNG signature plus IHDR chunk for testing.
func createMinimalPNG(width, height int) []byte {
	return []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG signature
		0x00, 0x00, 0x00, 0x0D, // IHDR chunk length (13)
		0x49, 0x48, 0x44, 0x52, // "IHDR"
		byte(width >> 24), byte(width >> 16), byte(width >> 8), byte(width),
		byte(height >> 24), byte(height >> 16), byte(height >> 8), byte(height),
		0x08, 0x02, 0x00, 0x00, 0x00, // bit depth, color type, methods
	}
}

// createMinimalGIF builds a GIF header plus logical screen descriptor.
func createMinimalGIF(width, height int) []byte {
	return []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // "GIF89a"
		byte(width), byte(width >> 8),
		byte(height), byte(height >> 8),
		0x80, 0x00, 0x00,
	}
}

func TestInfo_PNG(t *testing.T) {
	info := Info(createMinimalPNG(1920, 1080))

	assert.Equal(t, FormatPNG, info.Format, "PNG magic bytes should be detected")
	assert.Equal(t, 1920, info.Width)
	assert.Equal(t, 1080, info.Height)
	assert.Equal(t, OrientationLandscape, info.Orientation)
}

func TestInfo_GIFPortrait(t *testing.T) {
	info := Info(createMinimalGIF(50, 100))

	assert.Equal(t, FormatGIF, info.Format)
	assert.Equal(t, 50, info.Width)
	assert.Equal(t, 100, info.Height)
	assert.Equal(t, OrientationPortrait, info.Orientation)
}

func TestInfo_UnknownBytes(t *testing.T) {
	info := Info([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	assert.Equal(t, FormatUnknown, info.Format, "garbage bytes should not match any format")
	assert.Equal(t, 1920, info.Width, "unknown input should carry the fallback width")
	assert.Equal(t, 1080, info.Height, "unknown input should carry the fallback height")
}

func TestInfo_EmptyBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		info := Info(nil)
		assert.Equal(t, FormatUnknown, info.Format)
	}, "Info must tolerate empty input")
}

func TestInfo_Deterministic(t *testing.T) {
	data := createMinimalPNG(640, 480)

	first := Info(data)
	second := Info(data)
	assert.Equal(t, first, second, "Info must be a pure function of the buffer")
}

func TestInfoFromReader(t *testing.T) {
	info, err := InfoFromReader(bytes.NewReader(createMinimalPNG(300, 200)))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, info.Format)
	assert.Equal(t, 300, info.Width)
	assert.Equal(t, 200, info.Height)
}

func TestInfoFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.gif")
	require.NoError(t, os.WriteFile(path, createMinimalGIF(320, 240), 0o644))

	info, err := InfoFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatGIF, info.Format)
	assert.Equal(t, 320, info.Width)
	assert.Equal(t, 240, info.Height)
}

func TestInfoFromFile_Missing(t *testing.T) {
	_, err := InfoFromFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err, "missing files are the one failure InfoFromFile can report")
}

func TestDetectOrientation(t *testing.T) {
	assert.Equal(t, OrientationLandscape, DetectOrientation(200, 100))
	assert.Equal(t, OrientationLandscape, DetectOrientation(100, 100), "ties go to landscape")
	assert.Equal(t, OrientationPortrait, DetectOrientation(50, 100))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType("png"))
	assert.Equal(t, "image/jpeg", ContentType("jpeg"))
	assert.Equal(t, "image/jpeg", ContentType("jpg"))
	assert.Equal(t, "image/avif", ContentType("AVIF"), "lookup is case-insensitive")
	assert.Equal(t, "application/octet-stream", ContentType("bogus"))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "jpg", Extension("jpeg"))
	assert.Equal(t, "jpg", Extension("jpg"))
	assert.Equal(t, "webp", Extension("webp"))
	assert.Equal(t, "bogus", Extension("bogus"), "unrecognized keys pass through unchanged")
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("jpeg"))
	assert.True(t, IsSupportedFormat("JPEG"))
	assert.True(t, IsSupportedFormat("avif"))
	assert.False(t, IsSupportedFormat("bmp"))
	assert.False(t, IsSupportedFormat(""))
}

func TestIsValidFileSize(t *testing.T) {
	assert.True(t, IsValidFileSize(10*1024*1024, 0), "exactly the default cap is valid")
	assert.False(t, IsValidFileSize(10*1024*1024+1, 0))
	assert.True(t, IsValidFileSize(100, 200))
	assert.False(t, IsValidFileSize(300, 200))
}
