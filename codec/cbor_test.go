package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fixedstr"
)

func TestMarshal_TextForm(t *testing.T) {
	s := fixedstr.New(10, "Hello")

	data, err := Marshal(s)
	require.NoError(t, err)

	// The wire form is the trimmed text, indistinguishable from a plain
	// string. Capacity and padding never reach the wire.
	plain, err := Marshal("Hello")
	require.NoError(t, err)
	require.Equal(t, plain, data)
}

func TestMarshal_TextForm_TokenType(t *testing.T) {
	data, err := Marshal(fixedstr.New(5, "Hello"))
	require.NoError(t, err)

	diag, err := Diagnose(data)
	require.NoError(t, err)
	require.Equal(t, `"Hello"`, diag, "default form must be a text token")
}

func TestMarshal_TextForm_InvalidUTF8(t *testing.T) {
	s, err := fixedstr.FromBytes(2, []byte{0xFF, 0xFE})
	require.NoError(t, err)

	_, err = Marshal(s)
	require.Error(t, err)
}

func TestUnmarshal_TextForm(t *testing.T) {
	data, err := Marshal("Hello")
	require.NoError(t, err)

	s := fixedstr.Empty(10)
	require.NoError(t, Unmarshal(data, &s))
	require.Equal(t, 10, s.Cap(), "capacity comes from the receiver")
	require.Equal(t, "Hello", s.String())
}

func TestUnmarshal_TextForm_Truncates(t *testing.T) {
	data, err := Marshal("HelloWorld")
	require.NoError(t, err)

	s := fixedstr.Empty(5)
	require.NoError(t, Unmarshal(data, &s))
	require.Equal(t, "Hello", s.String())
}

func TestUnmarshal_TextForm_TruncatesAtRuneBoundary(t *testing.T) {
	data, err := Marshal("héllo")
	require.NoError(t, err)

	// 'é' is two bytes; cutting at byte 2 would split it, so truncation
	// backs up to byte 1.
	s := fixedstr.Empty(2)
	require.NoError(t, Unmarshal(data, &s))
	require.Equal(t, "h", s.String())
}

func TestRoundTrip_Struct(t *testing.T) {
	type record struct {
		Name  fixedstr.String `json:"name"`
		Count int             `json:"count"`
	}

	original := record{
		Name:  fixedstr.New(16, "sensor-1"),
		Count: 42,
	}

	data, err := Marshal(original)
	require.NoError(t, err)

	decoded := record{Name: fixedstr.Empty(16)}
	require.NoError(t, Unmarshal(data, &decoded))
	require.Equal(t, "sensor-1", decoded.Name.String())
	require.Equal(t, 42, decoded.Count)
}

func TestMarshal_Deterministic(t *testing.T) {
	value := map[string]fixedstr.String{
		"zeta":  fixedstr.New(8, "z"),
		"alpha": fixedstr.New(8, "a"),
		"mid":   fixedstr.New(8, "m"),
	}

	first, err := Marshal(value)
	require.NoError(t, err)
	second, err := Marshal(value)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncoderDecoder_Stream(t *testing.T) {
	var buf bytes.Buffer

	encoder := NewEncoder(&buf)
	require.NoError(t, encoder.Encode(fixedstr.New(8, "first")))
	require.NoError(t, encoder.Encode(fixedstr.New(8, "second")))

	decoder := NewDecoder(&buf)

	a := fixedstr.Empty(8)
	require.NoError(t, decoder.Decode(&a))
	require.Equal(t, "first", a.String())

	b := fixedstr.Empty(8)
	require.NoError(t, decoder.Decode(&b))
	require.Equal(t, "second", b.String())
}

func TestUnmarshal_DefaultMapType(t *testing.T) {
	data, err := Marshal(map[string]int{"a": 1})
	require.NoError(t, err)

	var v any
	require.NoError(t, Unmarshal(data, &v))
	require.IsType(t, map[string]any{}, v)
}
