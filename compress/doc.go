// Package compress provides compression codecs for archive blob payloads.
//
// Compression applies to the payload section of an archive blob only: the
// header and index stay uncompressed so a decoder can read the cell count
// and compression flag before touching the payload. Which codec was used is
// recorded in the blob header, so decoders never guess.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, zero overhead. The right
//     choice for small blobs where the header would dominate any savings.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Fixed-width
//     cell payloads compress well because the zero padding between cells is
//     highly repetitive.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//
// Zstd has two implementations selected at build time: valyala/gozstd when
// cgo is available, klauspost/compress/zstd otherwise. Both produce
// interoperable Zstandard frames.
//
// # Thread Safety
//
// All codecs are stateless values safe for concurrent use; internal
// encoder/decoder state is pooled per call.
package compress
