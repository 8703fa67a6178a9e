package codec

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/errs"
)

// RawString opts a value into the byte-oriented wire form.
//
// Where fixedstr.String serializes as a text token of its trimmed content,
// RawString serializes the full Cap raw bytes, padding included, as a CBOR
// byte string or a base64 JSON string. Encoding never fails, so values
// holding arbitrary binary data can pass through structured formats.
//
// Decoding is strict: the wire bytes must match the receiver's capacity
// exactly, or errs.ErrLengthMismatch is returned. There is no truncation
// and no padding on this path, so the receiver must be pre-sized, e.g.
// codec.Raw(fixedstr.Empty(16)).
type RawString struct {
	value fixedstr.String
}

// Raw wraps a value for byte-oriented serialization.
func Raw(s fixedstr.String) RawString {
	return RawString{value: s}
}

// Unwrap returns the wrapped value.
func (r RawString) Unwrap() fixedstr.String {
	return r.value
}

// MarshalCBOR encodes the value as a CBOR byte string holding all Cap raw
// bytes. It never fails on content; invalid UTF-8 passes through verbatim.
func (r RawString) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(r.value.RawBytes())
}

// UnmarshalCBOR decodes a CBOR byte string into the wrapped value.
//
// Returns errs.ErrLengthMismatch unless the byte string's length equals the
// receiver's capacity.
func (r *RawString) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return err
	}

	return r.setBytes(raw)
}

// MarshalJSON encodes the value's Cap raw bytes as a base64 JSON string,
// the standard library's representation for byte slices.
func (r RawString) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value.RawBytes())
}

// UnmarshalJSON decodes a base64 JSON string into the wrapped value, with
// the same strict length check as UnmarshalCBOR.
func (r *RawString) UnmarshalJSON(data []byte) error {
	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	return r.setBytes(raw)
}

func (r *RawString) setBytes(raw []byte) error {
	capacity := r.value.Cap()
	if len(raw) != capacity {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrLengthMismatch, len(raw), capacity)
	}

	s, err := fixedstr.FromBytes(capacity, raw)
	if err != nil {
		return err
	}
	r.value = s

	return nil
}

var (
	_ cbor.Marshaler   = RawString{}
	_ cbor.Unmarshaler = (*RawString)(nil)
	_ json.Marshaler   = RawString{}
	_ json.Unmarshaler = (*RawString)(nil)
)
