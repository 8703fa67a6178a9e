package archive

import (
	"iter"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/compress"
	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/format"
	"github.com/arloliu/fixedstr/internal/hash"
)

// Blob is a decoded cell blob providing zero-copy access to its cells.
//
// When the payload is uncompressed, cells alias the original blob bytes
// directly; the caller must keep that slice alive and unmodified while the
// Blob or any value obtained from it is in use. Use Deserialize to detach a
// cell from the blob.
type Blob struct {
	header  Header
	ids     []uint64
	byID    map[uint64]int
	payload []byte
}

// Decode parses and validates a cell blob produced by Encoder.
//
// The header and index are validated structurally and the payload is
// decompressed and checked against the recorded uncompressed size; a blob
// that passes Decode supports At and Lookup without further validation.
func Decode(data []byte) (*Blob, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var b Blob
	if err := b.header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	capacity := int(b.header.CellCapacity)
	count := int(b.header.CellCount)
	if capacity <= 0 {
		return nil, errs.ErrInvalidCapacity
	}
	if count > MaxCellCount {
		return nil, errs.ErrInvalidCellCount
	}

	indexSize := 0
	if b.header.Flag.HasNamedIndex() {
		indexSize = count * IndexEntrySize
	}

	if int(b.header.IndexOffset) != HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if int(b.header.PayloadOffset) != HeaderSize+indexSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if len(data) < HeaderSize+indexSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	engine := b.header.GetEndianEngine()

	if indexSize > 0 {
		b.ids = make([]uint64, count)
		b.byID = make(map[uint64]int, count)
		for i := range count {
			offset := HeaderSize + i*IndexEntrySize
			id := engine.Uint64(data[offset : offset+IndexEntrySize])
			b.ids[i] = id
			// First occurrence wins on hash collision.
			if _, ok := b.byID[id]; !ok {
				b.byID[id] = i
			}
		}
	}

	codec, err := compress.GetCodec(b.header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize+indexSize:])
	if err != nil {
		return nil, err
	}

	if len(payload) != int(b.header.PayloadSize) || len(payload) != count*capacity {
		return nil, errs.ErrInvalidPayloadSize
	}
	b.payload = payload

	return &b, nil
}

// Len returns the number of cells in the blob.
func (b *Blob) Len() int {
	return int(b.header.CellCount)
}

// Capacity returns the cell capacity in bytes.
func (b *Blob) Capacity() int {
	return int(b.header.CellCapacity)
}

// Compression returns the compression type the payload was stored with.
func (b *Blob) Compression() format.CompressionType {
	return b.header.Flag.GetCompression()
}

// HasNamedIndex returns whether the blob carries a cell-name index.
func (b *Blob) HasNamedIndex() bool {
	return b.header.Flag.HasNamedIndex()
}

// At returns cell i as a borrowed view into the payload. No bytes are
// copied. Panics if i is out of range.
func (b *Blob) At(i int) fixedstr.String {
	if i < 0 || i >= b.Len() {
		panic("archive: cell index out of range")
	}

	capacity := b.Capacity()
	offset := i * capacity

	return fixedstr.Alias(b.payload[offset : offset+capacity])
}

// Lookup returns the cell stored under name, as a borrowed view.
//
// The index stores xxHash64 IDs, not names, so on the (vanishingly rare)
// collision of two names the first cell added under the colliding ID is
// returned. The second return value is false when the blob has no named
// index or the name is absent.
func (b *Blob) Lookup(name string) (fixedstr.String, bool) {
	if b.byID == nil {
		return fixedstr.String{}, false
	}

	i, ok := b.byID[hash.ID(name)]
	if !ok {
		return fixedstr.String{}, false
	}

	return b.At(i), true
}

// All returns an iterator over borrowed views of all cells, in order.
func (b *Blob) All() iter.Seq[fixedstr.String] {
	return func(yield func(fixedstr.String) bool) {
		for i := range b.Len() {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}
