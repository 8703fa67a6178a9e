package compress

// NoOpCompressor is a pass-through codec that performs no compression.
//
// It is the default for archive blobs: fixed-capacity string payloads are
// often small enough that compression overhead outweighs the savings, and
// the pass-through keeps the zero-copy property of the decoded payload.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input while the result is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input while the result is in use.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
