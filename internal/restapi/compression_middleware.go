package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

// CompressionConfig controls response compression behavior.
type CompressionConfig struct {
	MinSize int // smallest response body worth compressing, in bytes
	Level   int // gzip compression level
}

// DefaultCompressionConfig returns the compression settings used in production.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   gzip.DefaultCompression,
	}
}

// NewCompressionMiddleware creates a gzip middleware with the given config.
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	if err != nil {
		// Invalid config; fall back to the library defaults.
		return func(next http.Handler) http.Handler {
			return gzhttp.GzipHandler(next)
		}
	}

	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}
}

// CompressionMiddleware wraps a handler with the default gzip settings.
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}

// applyGzipMiddleware wraps a handler with gzip compression
func applyGzipMiddleware(next http.Handler) http.Handler {
	return CompressionMiddleware(next)
}
