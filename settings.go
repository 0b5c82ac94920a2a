package cattopic

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings carries the upload limits that batch tools and embedding callers
// apply before extracting metadata.
type Settings struct {
	// MaxFileSize is the largest accepted file in bytes. Zero means
	// DefaultMaxFileSize.
	MaxFileSize int64 `yaml:"max_file_size"`

	// AllowedFormats restricts processing to the listed format keys.
	// Empty means every supported format is allowed.
	AllowedFormats []string `yaml:"allowed_formats"`

	// Concurrency bounds how many files a batch scan processes at once.
	// Zero lets the tool pick its own default.
	Concurrency int `yaml:"concurrency"`
}

// DefaultSettings returns the limits applied when no settings file is given.
func DefaultSettings() Settings {
	return Settings{MaxFileSize: DefaultMaxFileSize}
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// AcceptsSize reports whether a file of the given size passes the configured
// cap.
func (s Settings) AcceptsSize(size int64) bool {
	return IsValidFileSize(size, s.MaxFileSize)
}

// AcceptsFormat reports whether the format key is supported and passes the
// configured allow list.
func (s Settings) AcceptsFormat(format string) bool {
	if !IsSupportedFormat(format) {
		return false
	}
	if len(s.AllowedFormats) == 0 {
		return true
	}
	for _, allowed := range s.AllowedFormats {
		if strings.EqualFold(allowed, format) {
			return true
		}
	}
	return false
}
