package binio

import (
	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/endian"
	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/internal/pool"
)

// Encoder packs same-capacity values back-to-back into a pooled buffer.
//
// Each record occupies exactly the encoder's capacity, so record i starts
// at byte offset i*capacity. The encoder enforces that every written value
// matches the configured capacity; mixing capacities in one stream would
// make the offsets meaningless.
type Encoder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	capacity int
	count    int
}

// NewEncoder creates a fixed-width record encoder for values of the given
// capacity.
//
// The engine is carried for stream-contract uniformity and unused for the
// opaque payload bytes, as in Write. NewEncoder panics if capacity is
// negative.
func NewEncoder(engine endian.EndianEngine, capacity int) *Encoder {
	if capacity < 0 {
		panic("binio: negative capacity")
	}

	return &Encoder{
		engine:   engine,
		capacity: capacity,
		buf:      pool.GetRecordBuffer(),
	}
}

// Write appends one value as a fixed-width record.
//
// Returns errs.ErrCapacityMismatch when the value's capacity differs from
// the encoder's; nothing is written in that case.
func (e *Encoder) Write(s fixedstr.String) error {
	if s.Cap() != e.capacity {
		return errs.ErrCapacityMismatch
	}

	e.buf.Grow(e.capacity)
	e.buf.MustWrite(s.RawBytes())
	e.count++

	return nil
}

// WriteSlice appends a slice of values with a single buffer pre-allocation.
//
// All values are validated first; on any capacity mismatch nothing is
// written.
func (e *Encoder) WriteSlice(values []fixedstr.String) error {
	for _, s := range values {
		if s.Cap() != e.capacity {
			return errs.ErrCapacityMismatch
		}
	}

	e.buf.Grow(e.capacity * len(values))
	for _, s := range values {
		e.buf.MustWrite(s.RawBytes())
		e.count++
	}

	return nil
}

// Bytes returns the encoded records.
//
// The returned slice shares the underlying buffer with the encoder; do not
// modify it, and do not use it after Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of records written.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the total encoded size in bytes.
func (e *Encoder) Size() int {
	return e.buf.Len()
}

// Reset returns the internal buffer to the pool.
//
// After calling Reset, the encoder must not be used again.
func (e *Encoder) Reset() {
	if e.buf != nil {
		pool.PutRecordBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
