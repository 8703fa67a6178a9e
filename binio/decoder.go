package binio

import (
	"iter"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/endian"
	"github.com/arloliu/fixedstr/errs"
)

// Decoder reads back-to-back fixed-width records produced by Encoder.
//
// The decoder validates once, at construction, that the data length is a
// whole number of records; afterwards every access is a bounds-checked
// slice, with no per-record parsing.
type Decoder struct {
	engine   endian.EndianEngine
	data     []byte
	capacity int
	count    int
}

// NewDecoder creates a decoder over data containing records of the given
// capacity.
//
// Returns errs.ErrInvalidCapacity for capacity <= 0 and
// errs.ErrInvalidPayloadSize when len(data) is not a multiple of capacity.
// The decoder borrows data for its lifetime; the caller must not modify it.
func NewDecoder(engine endian.EndianEngine, capacity int, data []byte) (*Decoder, error) {
	if capacity <= 0 {
		return nil, errs.ErrInvalidCapacity
	}
	if len(data)%capacity != 0 {
		return nil, errs.ErrInvalidPayloadSize
	}

	return &Decoder{
		engine:   engine,
		data:     data,
		capacity: capacity,
		count:    len(data) / capacity,
	}, nil
}

// Len returns the number of records in the data.
func (d *Decoder) Len() int {
	return d.count
}

// Capacity returns the record capacity in bytes.
func (d *Decoder) Capacity() int {
	return d.capacity
}

// At returns an owned copy of record i. Panics if i is out of range.
func (d *Decoder) At(i int) fixedstr.String {
	if i < 0 || i >= d.count {
		panic("binio: record index out of range")
	}

	offset := i * d.capacity

	return fixedstr.Alias(d.data[offset : offset+d.capacity]).Clone()
}

// All returns an iterator over owned copies of all records, in order.
func (d *Decoder) All() iter.Seq[fixedstr.String] {
	return func(yield func(fixedstr.String) bool) {
		for i := range d.count {
			if !yield(d.At(i)) {
				return
			}
		}
	}
}
