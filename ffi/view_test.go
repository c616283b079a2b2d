package ffi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStr_BorrowsWithoutCopy(t *testing.T) {
	s := "keyspace"
	v := NewStr(s)

	require.Equal(t, len(s), v.Len())
	assert.Equal(t, unsafe.StringData(s), v.Data())
	assert.Equal(t, s, v.String())
}

func TestNewStr_Empty(t *testing.T) {
	v := NewStr("")

	assert.Nil(t, v.Data())
	assert.Zero(t, v.Len())
	assert.Empty(t, v.String())
}

func TestNewByteSlice_RoundTrip(t *testing.T) {
	id := []byte{0x01, 0x02, 0xFF}
	v := NewByteSlice(id)

	require.Equal(t, 3, v.Len())
	assert.Equal(t, &id[0], v.Data())
	assert.Equal(t, []byte{0x01, 0x02, 0xFF}, v.Bytes())
}

func TestByteSlice_BytesCopies(t *testing.T) {
	id := []byte{0x0A, 0x0B}
	out := NewByteSlice(id).Bytes()
	out[0] = 0xFF

	assert.Equal(t, byte(0x0A), id[0], "Bytes must not alias the borrowed buffer")
}

func TestNewByteSlice_Empty(t *testing.T) {
	assert.Nil(t, NewByteSlice(nil).Bytes())
	assert.Nil(t, NewByteSlice([]byte{}).Data())
}

func TestViewLayout(t *testing.T) {
	// Views are passed by value to C as { const uint8_t*, size_t }.
	assert.Equal(t, unsafe.Sizeof(uintptr(0))*2, unsafe.Sizeof(Str{}))
	assert.Equal(t, unsafe.Sizeof(Str{}), unsafe.Sizeof(ByteSlice{}))
}
