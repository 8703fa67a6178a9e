// Package codec provides the structured serialization configuration for
// fixedstr values: CBOR with Core Deterministic Encoding, plus the RawString
// wrapper that opts a value into the byte-oriented wire form.
//
// Two wire forms exist for a value, with a clear boundary:
//
//   - Text form (the default): fixedstr.String implements
//     encoding.TextMarshaler and json.Marshaler, so it serializes as a
//     string token holding the trimmed text. Encoding fails on invalid
//     UTF-8; decoding truncates oversized input to the receiver's capacity.
//   - Byte form (opt-in via RawString): the full Cap raw bytes, padding
//     included, as a CBOR byte string or a base64 JSON string. Encoding
//     never fails; decoding is strict and rejects any length other than
//     the receiver's capacity.
//
// The CBOR encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Same
// logical data always produces identical bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// Decoding either form requires a pre-sized receiver, e.g.
// fixedstr.Empty(16); a zero-valued String has capacity 0.
package codec
