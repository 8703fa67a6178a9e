// Package fixedstr provides a fixed-capacity, inline UTF-8 string value and
// a family of codec adapters that move it across serialization boundaries.
//
// A fixedstr.String holds exactly Cap bytes, fixed at construction time.
// Text shorter than the capacity is zero-padded; text longer than the
// capacity is truncated at a UTF-8 boundary. The content is intended to be
// valid UTF-8 but is not guaranteed to be: raw byte construction and the
// binary codecs can populate the buffer with arbitrary bytes, and only the
// text-producing accessors fail in that case.
//
// # Codec Adapters
//
// Each serialization ecosystem gets its own package; the value type itself
// carries only the default structured-text hooks:
//
//   - binio: fixed-width binary codec. Reads and writes exactly Cap raw
//     bytes against a positioned stream, no length prefix, no validation.
//   - archive: zero-copy archival codec. The archived form is byte-identical
//     to the live value; validation is structural only, and archived bytes
//     can be viewed as a live value without copying. Also provides a
//     self-describing multi-cell blob container with optional compression.
//   - codec: structured-data codec built on CBOR. The default encoding is a
//     text token via the value's TextMarshaler hooks; codec.RawString is an
//     explicit per-field override that encodes the raw bytes instead.
//
// # Basic Usage
//
// Constructing and reading values:
//
//	s := fixedstr.New(8, "Hello")       // "Hello\x00\x00\x00"
//	s.Cap()                             // 8
//	s.Len()                             // 5
//	text, err := s.TryString()          // "Hello", nil
//
//	long := fixedstr.New(5, "HelloWorld")
//	long.String()                       // "Hello" (truncated at construction)
//
// Exact-length construction from raw bytes:
//
//	v, err := fixedstr.FromBytes(5, []byte("Hello")) // ok
//	_, err = fixedstr.FromBytes(5, []byte("HelloWorld"))
//	errors.Is(err, errs.ErrLengthMismatch)           // true
//
// Fixed-width binary round-trip:
//
//	var buf bytes.Buffer
//	_ = binio.Write(&buf, endian.GetLittleEndianEngine(), s)
//	back, _ := binio.Read(&buf, endian.GetLittleEndianEngine(), s.Cap())
//
// # Error Handling
//
// All failure conditions are sentinel errors in the errs package, compared
// with errors.Is. Construction is all-or-nothing: no operation ever returns
// a partially populated value alongside an error.
//
// # Thread Safety
//
// A String is plain immutable data once constructed. It is safe to share
// across goroutines for reading and safe to copy; no operation in this
// module mutates a value in place.
package fixedstr

import (
	"bytes"
	"unicode/utf8"

	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/internal/bytesutil"
)

// String is a fixed-capacity byte buffer holding UTF-8 text.
//
// The buffer length is fixed when the value is constructed and never
// changes. Content shorter than the capacity is zero-padded; the first NUL
// byte, if any, marks the end of the text for the text-producing accessors.
// Consumers must not assume a terminator is present: a buffer whose text
// fills the full capacity has no NUL at all.
//
// The zero value has capacity 0 and is empty.
type String struct {
	data []byte
}

// New creates a String of the given capacity from text, truncating and
// padding as needed.
//
// Truncation happens at a UTF-8 boundary: the result holds the largest
// prefix of text whose encoding fits in capacity bytes, so a multi-byte
// rune is never split. Remaining capacity is zero-padded.
//
// New panics if capacity is negative; an oversized text input is not an
// error, truncation is the defined behavior.
func New(capacity int, text string) String {
	if capacity < 0 {
		panic("fixedstr: negative capacity")
	}

	data := make([]byte, capacity)
	copy(data, text[:truncationPoint(text, capacity)])

	return String{data: data}
}

// Empty creates an all-zero String of the given capacity.
//
// Empty is the usual way to obtain an unmarshal target for the structured
// codecs: the receiver's capacity determines the truncation limit.
//
// Empty panics if capacity is negative.
func Empty(capacity int) String {
	if capacity < 0 {
		panic("fixedstr: negative capacity")
	}

	return String{data: make([]byte, capacity)}
}

// FromBytes creates a String of the given capacity from exactly
// capacity raw bytes.
//
// Unlike New, this path is strict: it returns errs.ErrLengthMismatch when
// len(b) != capacity, and performs no truncation, padding, or UTF-8
// validation. The bytes are copied, so the caller keeps ownership of b.
func FromBytes(capacity int, b []byte) (String, error) {
	if capacity < 0 {
		return String{}, errs.ErrInvalidCapacity
	}
	if len(b) != capacity {
		return String{}, errs.ErrLengthMismatch
	}

	data := make([]byte, capacity)
	copy(data, b)

	return String{data: data}, nil
}

// Alias creates a String that shares data without copying.
//
// This is the zero-copy constructor used by the archive package: the
// resulting value observes exactly the bytes in data, and its capacity is
// len(data). The caller must keep data alive and unmodified for as long as
// the returned value is reachable; use Clone to detach. Prefer FromBytes
// unless the copy is measured to matter.
func Alias(data []byte) String {
	return String{data: data}
}

// Cap returns the fixed capacity of the buffer in bytes.
func (s String) Cap() int {
	return len(s.data)
}

// Len returns the effective text length in bytes: the index of the first
// NUL byte, or the full capacity when no NUL is present.
func (s String) Len() int {
	if i := bytes.IndexByte(s.data, 0); i >= 0 {
		return i
	}

	return len(s.data)
}

// IsEmpty reports whether the effective text length is zero.
func (s String) IsEmpty() bool {
	return s.Len() == 0
}

// TryString returns the buffer content up to the first NUL as a string,
// or errs.ErrInvalidUTF8 when that content is not valid UTF-8.
//
// The returned string aliases the internal buffer (no copy); this is safe
// because a String is immutable once constructed.
func (s String) TryString() (string, error) {
	text := s.data[:s.Len()]
	if !utf8.Valid(text) {
		return "", errs.ErrInvalidUTF8
	}

	return bytesutil.String(text), nil
}

// String returns the buffer content up to the first NUL, without UTF-8
// validation. Invalid sequences pass through unchanged.
//
// Implements fmt.Stringer. Use TryString when validity matters.
func (s String) String() string {
	return string(s.data[:s.Len()])
}

// IsValidUTF8 reports whether the content up to the first NUL is valid
// UTF-8 text.
func (s String) IsValidUTF8() bool {
	return utf8.Valid(s.data[:s.Len()])
}

// Bytes returns a copy of the full Cap-byte buffer, padding included.
func (s String) Bytes() []byte {
	b := make([]byte, len(s.data))
	copy(b, s.data)

	return b
}

// RawBytes returns the full Cap-byte buffer without copying.
//
// The returned slice must be treated as read-only; modifying it breaks the
// immutability every codec in this module relies on.
func (s String) RawBytes() []byte {
	return s.data
}

// Equal reports whether s and other have identical capacity and identical
// raw bytes, padding included.
func (s String) Equal(other String) bool {
	return bytes.Equal(s.data, other.data)
}

// Clone returns an owned copy of s.
//
// Values obtained from the zero-copy archival path alias their source
// buffer; Clone detaches them.
func (s String) Clone() String {
	return String{data: s.Bytes()}
}

// truncationPoint returns the length in bytes of the largest prefix of
// text that fits in capacity bytes without splitting a rune.
func truncationPoint(text string, capacity int) int {
	if len(text) <= capacity {
		return len(text)
	}

	end := capacity
	for end > 0 && !utf8.RuneStart(text[end]) {
		end--
	}

	return end
}
