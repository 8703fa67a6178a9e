// Package errs defines sentinel error values shared across the fixedstr
// codec packages.
//
// All errors are plain sentinels intended for errors.Is comparison.
// Codec boundaries may wrap them with additional context via fmt.Errorf
// and the %w verb.
package errs

import "errors"

var (
	// ErrInvalidUTF8 indicates the buffer content is not valid UTF-8 text.
	// It is raised only at text-producing boundaries (TryString, text
	// serialization); the raw byte and archival paths never raise it.
	ErrInvalidUTF8 = errors.New("fixedstr: buffer is not valid UTF-8")

	// ErrLengthMismatch indicates a byte slice used for exact-length
	// construction does not match the target capacity.
	ErrLengthMismatch = errors.New("fixedstr: byte length does not match capacity")

	// ErrInvalidCapacity indicates a negative capacity was requested.
	ErrInvalidCapacity = errors.New("fixedstr: invalid capacity")

	// ErrInvalidHeaderSize indicates an archive header is not exactly
	// archive.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("fixedstr: invalid archive header size")

	// ErrInvalidMagic indicates an archive blob does not start with the
	// fixedstr magic number.
	ErrInvalidMagic = errors.New("fixedstr: invalid archive magic number")

	// ErrInvalidHeaderFlags indicates an archive header carries unknown or
	// inconsistent flag bits.
	ErrInvalidHeaderFlags = errors.New("fixedstr: invalid archive header flags")

	// ErrInvalidCellCount indicates an archive cell count outside the
	// supported range.
	ErrInvalidCellCount = errors.New("fixedstr: invalid archive cell count")

	// ErrInvalidPayloadSize indicates an archive payload whose size is not
	// a whole multiple of the cell capacity, or that disagrees with the
	// header's recorded size.
	ErrInvalidPayloadSize = errors.New("fixedstr: invalid archive payload size")

	// ErrCapacityMismatch indicates a value whose capacity differs from the
	// capacity an encoder or blob was created with.
	ErrCapacityMismatch = errors.New("fixedstr: value capacity does not match codec capacity")

	// ErrEncoderFinished indicates Add was called on an archive encoder
	// after Finish.
	ErrEncoderFinished = errors.New("fixedstr: archive encoder already finished")

	// ErrInvalidCellName indicates an empty cell name was passed to an
	// archive encoder.
	ErrInvalidCellName = errors.New("fixedstr: invalid cell name")

	// ErrCellAlreadyAdded indicates the same cell name was added twice to
	// one archive blob.
	ErrCellAlreadyAdded = errors.New("fixedstr: cell name already added")

	// ErrHashCollision indicates two different cell names hashed to the
	// same 64-bit ID. The blob index stores IDs only, so the collision
	// cannot be resolved at decode time and encoding is refused.
	ErrHashCollision = errors.New("fixedstr: cell name hash collision")
)
