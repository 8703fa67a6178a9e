package compress

// ZstdCompressor provides Zstandard compression for archive blob payloads.
//
// Zstd gives the best ratio of the supported codecs, which suits archival
// use: back-to-back fixed-capacity cells carry repetitive zero padding that
// Zstd collapses well. Prefer S2 or LZ4 when decode latency matters more
// than blob size.
//
// The implementation is selected at build time: valyala/gozstd (cgo) when
// available, klauspost/compress/zstd otherwise. Both emit standard
// Zstandard frames, so blobs are interoperable across builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
