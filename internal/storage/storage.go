package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedMediaType is returned for uploads outside the allowed set.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// Uploader stores an attachment and returns its public URL. Keys follow the
// {entityID}/{randomName}.{ext} convention inside the configured bucket.
type Uploader interface {
	Upload(ctx context.Context, entityID string, filename string, contentType string, data []byte) (string, error)
}

var extensionByType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// extensionFor picks the object extension from the content type, falling back
// to the original filename's extension.
func extensionFor(contentType, filename string) (string, error) {
	if ext, ok := extensionByType[contentType]; ok {
		return ext, nil
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext, nil
	}
	return "", ErrUnsupportedMediaType
}
