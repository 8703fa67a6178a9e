// Package bytesutil provides zero-copy conversions between strings and
// byte slices.
//
// This package is the single audited unsafe boundary for the module: every
// aliasing conversion lives here, so the safety argument (flat byte data,
// no interior pointers, caller-enforced immutability) is made in one place
// instead of at each call site.
package bytesutil

import "unsafe"

// String converts b to a string without copying.
//
// The returned string shares memory with b. The caller must not modify b
// while the string is reachable; doing so violates string immutability and
// is undefined behavior.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes converts s to a byte slice without copying.
//
// The returned slice shares memory with s and must be treated as read-only.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
