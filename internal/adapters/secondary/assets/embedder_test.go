package assets

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestBase64Embedder_Embed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o750))
	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.png"), payload, 0o600))

	e := NewBase64Embedder()
	uri, err := e.Embed(dir, "img/logo.png")
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload), uri)
}

func TestBase64Embedder_MediaTypes(t *testing.T) {
	dir := t.TempDir()
	e := NewBase64Embedder()

	tests := []struct {
		name     string
		file     string
		wantType string
	}{
		{name: "jpeg", file: "photo.jpg", wantType: "image/jpeg"},
		{name: "gif", file: "anim.gif", wantType: "image/gif"},
		{name: "mp4", file: "clip.mp4", wantType: "video/mp4"},
		{name: "unknown extension", file: "blob.xyz123", wantType: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte("x"), 0o600))

			uri, err := e.Embed(dir, tt.file)
			require.NoError(t, err)
			assert.Contains(t, uri, "data:"+tt.wantType)
			assert.Contains(t, uri, ";base64,")
		})
	}
}

func TestBase64Embedder_Missing(t *testing.T) {
	e := NewBase64Embedder()

	_, err := e.Embed(t.TempDir(), "does/not/exist.png")

	var notFound *entities.MediaNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "does/not/exist.png", notFound.Path)
}
