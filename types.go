package cattopic

// Format identifies an image container format detected from magic bytes.
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatGIF     Format = "gif"
	FormatWebP    Format = "webp"
	FormatAVIF    Format = "avif"
)

// Orientation describes the aspect of an image. Square images count as
// landscape.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// ImageInfo holds the metadata extracted from an image header.
type ImageInfo struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Format      Format      `json:"format"`
	Orientation Orientation `json:"orientation"`
}
