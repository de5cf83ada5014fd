package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the optional per-project configuration file looked up
// next to the source document.
const ConfigFileName = "slidesmith.toml"

// Config holds tool settings. Everything has a working default; a
// slidesmith.toml in the source directory overrides selectively.
type Config struct {
	Output    OutputConfig    `toml:"output"`
	Cache     CacheConfig     `toml:"cache"`
	Highlight HighlightConfig `toml:"highlight"`
	Server    ServerConfig    `toml:"server"`
}

// OutputConfig controls where the compiled document is written.
type OutputConfig struct {
	// Path of the output document. Empty means the source path with its
	// extension replaced by .html.
	Path string `toml:"path"`
}

// CacheConfig controls the on-disk cache for fetched assets.
type CacheConfig struct {
	// Dir is the cache directory. Empty disables caching.
	Dir string `toml:"dir"`
}

// HighlightConfig names the syntax-highlighter assets inlined into the
// output document.
type HighlightConfig struct {
	// Enabled toggles highlighter inlining altogether.
	Enabled bool `toml:"enabled"`

	// Styles are stylesheet URLs, inlined in order.
	Styles []string `toml:"styles"`

	// Scripts are script URLs, inlined in order after the styles.
	Scripts []string `toml:"scripts"`
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cacheDir := ""
	if base, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(base, "slidesmith")
	}

	return &Config{
		Cache: CacheConfig{Dir: cacheDir},
		Highlight: HighlightConfig{
			Enabled: true,
			Styles: []string{
				"https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/themes/prism.min.css",
			},
			Scripts: []string{
				"https://cdnjs.cloudflare.com/ajax/libs/prism/1.29.0/prism.min.js",
			},
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 1948,
		},
	}
}

// TOMLLoader loads tool configuration from TOML files.
type TOMLLoader struct {
	localName string
}

// NewTOMLLoader creates a new TOML configuration loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{localName: ConfigFileName}
}

// Load returns the defaults overlaid with the directory's slidesmith.toml
// when one exists. A missing file is not an error; a malformed one is.
func (l *TOMLLoader) Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, l.localName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
