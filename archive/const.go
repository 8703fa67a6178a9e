package archive

const (
	// HeaderSize is the fixed size of the blob header in bytes.
	HeaderSize = 32

	// IndexEntrySize is the size of one name index entry in bytes: a 64-bit
	// xxHash of the cell name.
	IndexEntrySize = 8

	// MaxCellCount is the maximum number of cells a single blob may carry.
	MaxCellCount = 1 << 24
)

// Option bit masks and the format magic number for the Flag.Options field.
const (
	// EndiannessMask selects the byte-order bit: 0 means little-endian,
	// 1 means big-endian.
	EndiannessMask uint16 = 0x0001

	// NamedIndexMask selects the named-index bit: set when the blob carries
	// a cell-name hash index between the header and the payload.
	NamedIndexMask uint16 = 0x0002

	// ReservedBitsMask covers the option bits that must be zero.
	ReservedBitsMask uint16 = 0x000C

	// MagicNumberMask covers the magic number in bits 4-15.
	MagicNumberMask uint16 = 0xFFF0

	// MagicCellBlobV1Opt is the magic number of the cell blob format v1.
	MagicCellBlobV1Opt uint16 = 0xF1D0
)
