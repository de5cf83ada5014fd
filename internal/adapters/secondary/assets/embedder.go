package assets

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// Base64Embedder implements the MediaEmbedder port by inlining media
// files as base64 data URIs, making the output document free of relative
// references.
type Base64Embedder struct{}

// NewBase64Embedder creates a new media embedder.
func NewBase64Embedder() *Base64Embedder {
	return &Base64Embedder{}
}

// Embed reads the file at relativePath under baseDir and returns it as a
// data URI. A path that does not resolve yields MediaNotFoundError naming
// the offending path.
func (e *Base64Embedder) Embed(baseDir, relativePath string) (string, error) {
	path := filepath.Join(baseDir, relativePath)

	data, err := os.ReadFile(path) // #nosec G304 - path comes from the user's own document
	if err != nil {
		if os.IsNotExist(err) {
			return "", &entities.MediaNotFoundError{Path: relativePath}
		}
		return "", fmt.Errorf("reading media file %s: %w", relativePath, err)
	}

	return "data:" + mediaType(path) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// mediaType guesses a MIME type from the file extension.
func mediaType(path string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}
	return "application/octet-stream"
}
