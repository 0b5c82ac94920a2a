package cattopic

import (
	"fmt"
	"io"
	"os"

	"github.com/Codeniu/CattoPic/formats"
)

// Info extracts format, pixel dimensions and orientation from the raw bytes
// of an image file. Only headers are inspected; pixel data is never decoded.
//
// Info never fails: unrecognized content is reported as FormatUnknown, and
// structures too damaged to carry dimensions fall back to 1920x1080. The
// result depends on nothing but the bytes passed in, so repeated calls on
// the same buffer return identical records.
//
// Example:
//
//	info := cattopic.Info(data)
//	fmt.Printf("%s %dx%d (%s)\n", info.Format, info.Width, info.Height, info.Orientation)
func Info(data []byte) *ImageInfo {
	name := formats.Detect(data)
	width, height := formats.Dimensions(name, data)

	format := FormatUnknown
	if name != "" {
		format = Format(name)
	}

	return &ImageInfo{
		Width:       width,
		Height:      height,
		Format:      format,
		Orientation: DetectOrientation(width, height),
	}
}

// DetectOrientation derives an orientation from pixel dimensions. Ties go to
// landscape.
func DetectOrientation(width, height int) Orientation {
	if width >= height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// InfoFromReader reads the whole of r and extracts metadata from the bytes.
// Only the read itself can fail; the extraction is the same best-effort
// computation as Info.
func InfoFromReader(r io.Reader) (*ImageInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return Info(data), nil
}

// InfoFromFile reads the file at path and extracts metadata from its bytes.
func InfoFromFile(path string) (*ImageInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Info(data), nil
}
