package archive

import (
	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/format"
)

// Flag represents the packed option field at the start of the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is the named index flag, 0 means no index, 1 means a cell-name
	// hash index is present between the header and the payload.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xF1D0: cell blob format v1
	Options uint16

	// Compression indicates the compression applied to the payload section.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2,
	// CompressionLZ4.
	Compression uint8

	// Reserved is reserved for future use, must be zero.
	Reserved uint8
}

// NewFlag creates a new Flag with default settings: little-endian, no named
// index, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicCellBlobV1Opt,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// HasNamedIndex returns whether the blob carries a cell-name hash index.
func (f Flag) HasNamedIndex() bool {
	return (f.Options & NamedIndexMask) != 0
}

// SetNamedIndex enables or disables the cell-name hash index.
func (f *Flag) SetNamedIndex(enabled bool) {
	if enabled {
		f.Options |= NamedIndexMask
	} else {
		f.Options &^= NamedIndexMask
	}
}

// IsLittleEndian returns whether the blob sections are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the blob sections are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicCellBlobV1Opt
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagic
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
