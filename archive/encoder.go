package archive

import (
	"fmt"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/compress"
	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/format"
	"github.com/arloliu/fixedstr/internal/collision"
	"github.com/arloliu/fixedstr/internal/hash"
	"github.com/arloliu/fixedstr/internal/options"
	"github.com/arloliu/fixedstr/internal/pool"
)

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression type for the blob.
// The default is no compression.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid compression type: %d", compression)
		}
		e.flag.SetCompression(compression)

		return nil
	})
}

// WithLittleEndian sets little-endian byte order for the blob sections.
// This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for the blob sections.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithBigEndian()
	})
}

// Encoder builds a cell blob from same-capacity values.
//
// Cells are accumulated with Add or AddValue and the blob is produced once
// with Finish. An encoder is single-use: after Finish it rejects further
// calls with errs.ErrEncoderFinished.
type Encoder struct {
	buf      *pool.ByteBuffer
	tracker  *collision.Tracker
	flag     Flag
	capacity int
	ids      []uint64
	named    bool
	finished bool
}

// NewEncoder creates a blob encoder for cells of the given capacity.
//
// Returns errs.ErrInvalidCapacity when capacity is not positive, or the
// first option error.
func NewEncoder(capacity int, opts ...EncoderOption) (*Encoder, error) {
	if capacity <= 0 {
		return nil, errs.ErrInvalidCapacity
	}

	e := &Encoder{
		flag:     NewFlag(),
		capacity: capacity,
		tracker:  collision.NewTracker(),
		buf:      pool.GetArchiveBuffer(),
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutArchiveBuffer(e.buf)
		return nil, err
	}

	return e, nil
}

// Add appends one named cell. The name is hashed with xxHash64 and stored in
// the blob's index, so the cell can later be found with Blob.Lookup.
//
// Names must be unique within a blob; a duplicate fails with
// errs.ErrCellAlreadyAdded. Distinct names hashing to the same 64-bit ID
// cannot be told apart at decode time, so they fail with
// errs.ErrHashCollision rather than silently shadowing each other.
func (e *Encoder) Add(name string, s fixedstr.String) error {
	if err := e.checkCell(s); err != nil {
		return err
	}

	id := hash.ID(name)
	if err := e.tracker.Track(name, id); err != nil {
		return err
	}

	e.appendCell(s, id)
	e.named = true

	return nil
}

// AddValue appends one unnamed cell, addressable only by position.
func (e *Encoder) AddValue(s fixedstr.String) error {
	if err := e.checkCell(s); err != nil {
		return err
	}

	e.appendCell(s, 0)

	return nil
}

func (e *Encoder) checkCell(s fixedstr.String) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if s.Cap() != e.capacity {
		return errs.ErrCapacityMismatch
	}
	if len(e.ids) >= MaxCellCount {
		return errs.ErrInvalidCellCount
	}

	return nil
}

func (e *Encoder) appendCell(s fixedstr.String, id uint64) {
	e.buf.Grow(e.capacity)
	e.buf.MustWrite(s.RawBytes())
	e.ids = append(e.ids, id)
}

// Len returns the number of cells added so far.
func (e *Encoder) Len() int {
	return len(e.ids)
}

// Capacity returns the cell capacity in bytes.
func (e *Encoder) Capacity() int {
	return e.capacity
}

// Finish assembles and returns the blob: header, name index when any cell
// was named, then the payload compressed with the configured codec.
//
// The returned slice is freshly allocated and owned by the caller. Finish
// releases the encoder's internal buffer; the encoder must not be reused.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutArchiveBuffer(e.buf)
		e.buf = nil
	}()

	e.flag.SetNamedIndex(e.named)

	header, err := NewHeader(e.flag, e.capacity, len(e.ids))
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(e.flag.GetCompression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(e.buf.Bytes())
	if err != nil {
		return nil, err
	}

	engine := header.GetEndianEngine()

	blob := make([]byte, 0, int(header.PayloadOffset)+len(payload))
	blob = append(blob, header.Bytes()...)
	if e.named {
		for _, id := range e.ids {
			blob = engine.AppendUint64(blob, id)
		}
	}
	blob = append(blob, payload...)

	return blob, nil
}
