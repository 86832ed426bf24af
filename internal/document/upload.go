// Package document checks uploaded salary slips and extracts their contents.
package document

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

const MaxUploadSize int64 = 5 * 1024 * 1024

var DefaultAllowedTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/jpg"}

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("file is empty")
)

// Upload is a file submitted by the user.
type Upload struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Content     []byte `json:"-"`
}

// Limits are the constraints checked before extraction is attempted.
type Limits struct {
	MaxSize      int64    `mapstructure:"max_size_bytes"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxSize:      MaxUploadSize,
		AllowedTypes: append([]string(nil), DefaultAllowedTypes...),
	}
}

// Validate checks size first, then content type. The returned error wraps
// ErrFileTooLarge, ErrUnsupportedType or ErrEmptyFile.
func Validate(u Upload, limits Limits) error {
	if u.Size <= 0 {
		return ErrEmptyFile
	}
	if u.Size > limits.MaxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, u.Size, limits.MaxSize)
	}

	contentType := normalizeType(u.ContentType)
	for _, allowed := range limits.AllowedTypes {
		if contentType == normalizeType(allowed) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, u.ContentType)
}

func normalizeType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// NewUpload builds an Upload from raw file content, sniffing the content type
// when the extension does not name one.
func NewUpload(fileName string, content []byte) Upload {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	return Upload{
		FileName:    filepath.Base(fileName),
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}
}
