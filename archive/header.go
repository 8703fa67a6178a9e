package archive

import (
	"github.com/arloliu/fixedstr/endian"
	"github.com/arloliu/fixedstr/errs"
)

// Header represents the fixed-size header section of a cell blob.
// It is 32 bytes and contains metadata about the blob structure.
type Header struct {
	// Flag is a packed field for options, magic number (0xF1D0) and payload
	// compression.
	Flag Flag // 4 bytes, offset 0-3

	// CellCapacity is the fixed byte width of every cell in the payload.
	CellCapacity uint32 // 4 bytes, offset 4-7
	// CellCount is the number of cells stored in the blob.
	CellCount uint32 // 4 bytes, offset 8-11
	// IndexOffset is the byte offset to the start of the name index section.
	IndexOffset uint32 // 4 bytes, offset 12-15
	// PayloadOffset is the byte offset to the start of the payload section.
	PayloadOffset uint32 // 4 bytes, offset 16-19
	// PayloadSize is the uncompressed size of the payload section in bytes.
	// Used for verification after decompression.
	PayloadSize uint32 // 4 bytes, offset 20-23

	Reserved [8]byte // Reserved for future use, must be zero, offset 24-31
}

// NewHeader creates a new Header for a blob with the given flag, cell
// capacity and cell count. The section offsets are derived from the flag's
// named-index setting.
func NewHeader(flag Flag, capacity int, count int) (*Header, error) {
	if capacity <= 0 {
		return nil, errs.ErrInvalidCapacity
	}
	if count < 0 || count > MaxCellCount {
		return nil, errs.ErrInvalidCellCount
	}

	payloadOffset := HeaderSize
	if flag.HasNamedIndex() {
		payloadOffset += count * IndexEntrySize
	}

	return &Header{
		Flag:          flag,
		CellCapacity:  uint32(capacity),      //nolint: gosec
		CellCount:     uint32(count),         //nolint: gosec
		IndexOffset:   HeaderSize,
		PayloadOffset: uint32(payloadOffset), //nolint: gosec
		PayloadSize:   uint32(capacity * count), //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags
// are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse options first to determine endianness (always little-endian for
	// the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Reserved = data[3]

	engine := h.GetEndianEngine()

	h.CellCapacity = engine.Uint32(data[4:8])
	h.CellCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	copy(h.Reserved[:], data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	// The Options field is always little-endian so a reader can learn the
	// byte order of the remaining fields from it.
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Reserved

	engine.PutUint32(b[4:8], h.CellCapacity)
	engine.PutUint32(b[8:12], h.CellCount)
	engine.PutUint32(b[12:16], h.IndexOffset)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadSize)
	copy(b[24:32], h.Reserved[:])

	return b
}

// GetEndianEngine returns the appropriate endian engine based on the header
// flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
