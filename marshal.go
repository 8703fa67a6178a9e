package fixedstr

import (
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
//
// The buffer content up to the first NUL is emitted as-is after UTF-8
// validation. Invalid content fails with errs.ErrInvalidUTF8; no
// replacement characters are substituted and no partial output is
// produced. Use the archive or binio codecs (or codec.RawString) for
// buffers that may hold non-text bytes.
func (s String) MarshalText() ([]byte, error) {
	text, err := s.TryString()
	if err != nil {
		return nil, fmt.Errorf("marshal text: %w", err)
	}

	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The input is truncated at a UTF-8 boundary to the receiver's existing
// capacity and zero-padded, exactly like New. Oversized input is not an
// error: truncation is the defined behavior of the text decode path. The
// strict alternative is codec.RawString, which rejects length mismatches.
//
// The receiver's capacity is the truncation limit, so the receiver must be
// pre-sized (typically with Empty); unmarshaling into the zero value
// truncates everything away.
func (s *String) UnmarshalText(text []byte) error {
	*s = New(s.Cap(), string(text))

	return nil
}

// MarshalJSON implements json.Marshaler as a JSON string token.
//
// Same semantics as MarshalText: validated, NUL-trimmed UTF-8 or
// errs.ErrInvalidUTF8.
func (s String) MarshalJSON() ([]byte, error) {
	text, err := s.TryString()
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}

	return json.Marshal(text)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Accepts a JSON string token of arbitrary length and truncates-and-pads
// it into the receiver's capacity. The only failure mode is a malformed
// token, which surfaces as the underlying json error, not as a codec
// error.
func (s *String) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	*s = New(s.Cap(), text)

	return nil
}

var (
	_ json.Marshaler   = String{}
	_ json.Unmarshaler = (*String)(nil)
)
