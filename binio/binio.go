// Package binio implements the fixed-width binary codec for fixedstr
// values.
//
// The wire format is the value's raw bytes and nothing else: exactly Cap
// bytes per value, no length prefix, no terminator, no validation. A reader
// therefore needs to know the capacity out of band, the same way it knows
// the layout of any other fixed-width field in the stream.
//
// Every operation takes an endian.EndianEngine because the surrounding
// stream contract carries an explicit byte-order parameter. The string
// payload is opaque bytes, not a multi-byte integer, so the engine is
// deliberately ignored here; passing it keeps call sites uniform with the
// numeric fields read and written around the string.
//
// # Failure Semantics
//
// Read consumes exactly capacity bytes or fails: a short stream surfaces
// io.ErrUnexpectedEOF (or io.EOF when nothing was read), and no partially
// populated value is ever returned. The stream position after a failed
// read is unspecified; callers must treat it as undefined.
package binio

import (
	"io"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/endian"
	"github.com/arloliu/fixedstr/errs"
)

// Write emits the raw Cap bytes of s to w with no framing.
//
// The order parameter is part of the stream contract but unused: the
// payload is opaque bytes, so byte order does not apply. Writer errors are
// propagated as-is.
func Write(w io.Writer, order endian.EndianEngine, s fixedstr.String) error {
	_ = order // opaque byte payload, byte order does not apply

	_, err := w.Write(s.RawBytes())

	return err
}

// Read consumes exactly capacity bytes from r and returns them as a new
// value.
//
// The read is all-or-nothing: on any error (including a stream that ends
// before capacity bytes were available) no value is returned, and the
// stream position is unspecified. io.ReadFull semantics apply: io.EOF when
// the stream was already exhausted, io.ErrUnexpectedEOF when it ended
// mid-value.
//
// The order parameter is unused for the same reason as in Write.
func Read(r io.Reader, order endian.EndianEngine, capacity int) (fixedstr.String, error) {
	_ = order // opaque byte payload, byte order does not apply

	if capacity < 0 {
		return fixedstr.String{}, errs.ErrInvalidCapacity
	}

	buf := make([]byte, capacity)
	if _, err := io.ReadFull(r, buf); err != nil {
		return fixedstr.String{}, err
	}

	// buf is owned here, so aliasing it is safe and saves a copy.
	return fixedstr.Alias(buf), nil
}
