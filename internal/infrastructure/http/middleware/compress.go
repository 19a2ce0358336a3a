package middleware

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CompressionConfig configures response compression
type CompressionConfig struct {
	GzipLevel   int // 1-9, also used for deflate
	BrotliLevel int // 0-11
}

// DefaultCompressionConfig favours speed over ratio; responses are small JSON
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		GzipLevel:   5,
		BrotliLevel: 5,
	}
}

// Compression compresses JSON and YAML responses with brotli, gzip or
// deflate, whichever the client accepts, brotli first
func Compression(cfg CompressionConfig) func(next http.Handler) http.Handler {
	compressor := chimiddleware.NewCompressor(cfg.GzipLevel,
		"application/json",
		"application/x-yaml",
		"text/html",
		"text/plain",
	)
	brotliLevel := cfg.BrotliLevel
	compressor.SetEncoder("br", func(w io.Writer, _ int) io.Writer {
		return brotli.NewWriterLevel(w, brotliLevel)
	})
	return compressor.Handler
}
