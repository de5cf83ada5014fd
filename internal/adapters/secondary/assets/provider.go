package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// maxAssetSize caps how much of a fetched asset is read, keeping a
// misbehaving server from exhausting memory.
const maxAssetSize = 10 << 20 // 10 MB

// CachingProvider implements the AssetProvider port. Assets are fetched
// over HTTP once and reused from an on-disk cache afterwards; a cache hit
// never touches the network.
type CachingProvider struct {
	client   *http.Client
	cacheDir string
}

// NewCachingProvider creates an asset provider caching into cacheDir. An
// empty cacheDir disables caching entirely.
func NewCachingProvider(cacheDir string) *CachingProvider {
	return &CachingProvider{
		client:   &http.Client{Timeout: 30 * time.Second},
		cacheDir: cacheDir,
	}
}

// Fetch returns the asset's text content, from cache when available.
func (p *CachingProvider) Fetch(ctx context.Context, url, cacheKey string) (string, error) {
	cachePath := ""
	if p.cacheDir != "" && cacheKey != "" {
		cachePath = filepath.Join(p.cacheDir, filepath.Base(cacheKey))
		if data, err := os.ReadFile(cachePath); err == nil { // #nosec G304 - path is cacheDir + sanitized key
			return string(data), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building asset request for %s: %w", url, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching asset %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching asset %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return "", fmt.Errorf("reading asset %s: %w", url, err)
	}

	if cachePath != "" {
		if err := os.MkdirAll(p.cacheDir, 0o750); err == nil {
			// Best effort: a cache write failure must not fail the fetch.
			_ = os.WriteFile(cachePath, body, 0o600)
		}
	}

	return string(body), nil
}
