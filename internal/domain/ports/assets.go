package ports

import "context"

// AssetProvider returns the raw text content of a third-party asset,
// identified by URL and a stable cache key. Implementations may serve
// from a local cache and must fail on unrecoverable fetch errors.
type AssetProvider interface {
	Fetch(ctx context.Context, url string, cacheKey string) (string, error)
}

// MediaEmbedder encodes the media file at relativePath (resolved against
// baseDir) into an embeddable textual representation such as a data URI.
// A path that does not resolve yields entities.MediaNotFoundError.
type MediaEmbedder interface {
	Embed(baseDir string, relativePath string) (string, error)
}
