// Package archive implements the zero-copy archival codec for fixedstr
// values, plus a cell blob container for storing many values together.
//
// The archived form of a value is identical to its in-memory form: Cap raw
// bytes, padding included. That identity is what makes zero-copy access
// possible, and it makes the format portable across architectures since the
// payload contains no multi-byte integers.
//
// # Single values
//
// Serialize writes the archived bytes, CheckBytes validates that a byte
// region can be viewed as an archived value, Access reinterprets validated
// bytes without copying, and Deserialize converts a borrowed view into an
// owned value.
//
// # Cell blobs
//
// Encoder and Decode handle the blob container: a 32-byte header, an
// optional index of xxHash64 cell-name IDs, and a payload of back-to-back
// fixed-width cells, optionally compressed as a whole. Header and index are
// never compressed, so a reader can locate cells without touching the
// payload codec.
package archive

import (
	"io"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/errs"
)

// CheckBytes verifies that data can be treated as the archived form of a
// value with the given capacity.
//
// The archived form carries no header, so the only structural requirement
// is the exact length: nil is returned if and only if len(data) equals
// capacity. Content is never inspected; any byte pattern of the right
// length is a valid archived value.
func CheckBytes(data []byte, capacity int) error {
	if capacity < 0 {
		return errs.ErrInvalidCapacity
	}
	if len(data) != capacity {
		return errs.ErrLengthMismatch
	}

	return nil
}

// Access reinterprets archived bytes as a value without copying.
//
// The caller must have validated data with CheckBytes first, and must keep
// data alive and unmodified for as long as the returned value is in use.
// The returned value borrows data directly.
func Access(data []byte) fixedstr.String {
	return fixedstr.Alias(data)
}

// Serialize writes the archived form of s to w: its raw Cap bytes, padding
// included, with no framing.
func Serialize(w io.Writer, s fixedstr.String) error {
	_, err := w.Write(s.RawBytes())

	return err
}

// Deserialize converts an archived value, typically a borrowed view from
// Access or Blob.At, into an owned value with its own backing storage.
func Deserialize(archived fixedstr.String) fixedstr.String {
	return archived.Clone()
}
