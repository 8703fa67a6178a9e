package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fixedstr"
	"github.com/arloliu/fixedstr/errs"
	"github.com/arloliu/fixedstr/format"
)

func TestCheckBytes(t *testing.T) {
	require.NoError(t, CheckBytes([]byte("Hello"), 5))
	require.NoError(t, CheckBytes([]byte{}, 0))
	require.NoError(t, CheckBytes(nil, 0))

	require.ErrorIs(t, CheckBytes([]byte("Hell"), 5), errs.ErrLengthMismatch)
	require.ErrorIs(t, CheckBytes([]byte("HelloWorld"), 5), errs.ErrLengthMismatch)
	require.ErrorIs(t, CheckBytes([]byte("x"), -1), errs.ErrInvalidCapacity)
}

func TestCheckBytes_ContentAgnostic(t *testing.T) {
	// Any byte pattern of the right length is archivable, including invalid
	// UTF-8 and interior NULs.
	require.NoError(t, CheckBytes([]byte{0xFF, 0xFE, 0x00, 0x80, 0xC0}, 5))
}

func TestAccess_ZeroCopy(t *testing.T) {
	data := []byte{'H', 'e', 'l', 'l', 'o'}
	require.NoError(t, CheckBytes(data, 5))

	s := Access(data)
	require.Equal(t, 5, s.Cap())
	require.Equal(t, "Hello", s.String())
	require.Same(t, &data[0], &s.RawBytes()[0], "access must not copy")

	// A borrowed view observes mutations of the underlying storage.
	data[0] = 'J'
	require.Equal(t, "Jello", s.String())
}

func TestSerialize_ExactBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, fixedstr.New(5, "Hello")))
	require.Equal(t, []byte{72, 101, 108, 108, 111}, buf.Bytes())
}

func TestSerialize_IncludesPadding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, fixedstr.New(8, "Hi")))
	require.Equal(t, []byte{'H', 'i', 0, 0, 0, 0, 0, 0}, buf.Bytes())
}

func TestSerializeAccess_RoundTrip(t *testing.T) {
	original := fixedstr.New(10, "héllo")

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, original))

	archived := buf.Bytes()
	require.NoError(t, CheckBytes(archived, 10))
	require.True(t, original.Equal(Access(archived)))
}

func TestSerialize_ErrorPropagation(t *testing.T) {
	err := Serialize(&failingWriter{err: io.ErrShortWrite}, fixedstr.New(4, "data"))
	require.ErrorIs(t, err, io.ErrShortWrite)
}

// failingWriter always returns its configured error.
type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestDeserialize_Detaches(t *testing.T) {
	data := []byte{'H', 'e', 'l', 'l', 'o'}
	borrowed := Access(data)

	owned := Deserialize(borrowed)
	data[0] = 'J'

	require.Equal(t, "Jello", borrowed.String())
	require.Equal(t, "Hello", owned.String(), "owned copy must not track mutations")
}

func TestFlag_Defaults(t *testing.T) {
	flag := NewFlag()

	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.False(t, flag.HasNamedIndex())
	require.Equal(t, format.CompressionNone, flag.GetCompression())
	require.Equal(t, MagicCellBlobV1Opt, flag.GetMagicNumber())
	require.NoError(t, flag.Validate())
}

func TestFlag_Toggles(t *testing.T) {
	flag := NewFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	flag.SetNamedIndex(true)
	require.True(t, flag.HasNamedIndex())
	flag.SetNamedIndex(false)
	require.False(t, flag.HasNamedIndex())

	flag.SetCompression(format.CompressionLZ4)
	require.Equal(t, format.CompressionLZ4, flag.GetCompression())
	require.NoError(t, flag.Validate())
}

func TestFlag_Validate(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		flag := NewFlag()
		flag.Options = (flag.Options &^ MagicNumberMask) | 0xAB10
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagic)
	})

	t.Run("reserved option bits", func(t *testing.T) {
		flag := NewFlag()
		flag.Options |= 0x0004
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("reserved byte", func(t *testing.T) {
		flag := NewFlag()
		flag.Reserved = 1
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})

	t.Run("bad compression", func(t *testing.T) {
		flag := NewFlag()
		flag.Compression = 0xEE
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidHeaderFlags)
	})
}

func TestHeader_RoundTrip(t *testing.T) {
	flag := NewFlag()
	flag.SetNamedIndex(true)
	flag.SetCompression(format.CompressionZstd)

	header, err := NewHeader(flag, 16, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(HeaderSize), header.IndexOffset)
	require.Equal(t, uint32(HeaderSize+3*IndexEntrySize), header.PayloadOffset)
	require.Equal(t, uint32(48), header.PayloadSize)

	data := header.Bytes()
	require.Len(t, data, HeaderSize)

	var parsed Header
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, *header, parsed)
}

func TestHeader_RoundTrip_BigEndian(t *testing.T) {
	flag := NewFlag()
	flag.WithBigEndian()

	header, err := NewHeader(flag, 8, 2)
	require.NoError(t, err)

	var parsed Header
	require.NoError(t, parsed.Parse(header.Bytes()))
	require.True(t, parsed.Flag.IsBigEndian())
	require.Equal(t, *header, parsed)
}

func TestHeader_Parse_Errors(t *testing.T) {
	var header Header

	require.ErrorIs(t, header.Parse(make([]byte, 16)), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, header.Parse(make([]byte, 33)), errs.ErrInvalidHeaderSize)

	// Zeroed header has no magic number.
	require.ErrorIs(t, header.Parse(make([]byte, HeaderSize)), errs.ErrInvalidMagic)
}

func TestNewHeader_Errors(t *testing.T) {
	_, err := NewHeader(NewFlag(), 0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)

	_, err = NewHeader(NewFlag(), 8, -1)
	require.ErrorIs(t, err, errs.ErrInvalidCellCount)

	_, err = NewHeader(NewFlag(), 8, MaxCellCount+1)
	require.ErrorIs(t, err, errs.ErrInvalidCellCount)
}
