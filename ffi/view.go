package ffi

import "unsafe"

// Str is a non-owning view of UTF-8 text. Its layout matches the C struct
// { const uint8_t *ptr; size_t len; }.
type Str struct {
	ptr *byte
	len uintptr
}

// NewStr borrows s. The returned view must not outlive the call it is passed to.
func NewStr(s string) Str {
	if len(s) == 0 {
		return Str{}
	}
	return Str{ptr: unsafe.StringData(s), len: uintptr(len(s))}
}

// Data returns the address of the first byte, or nil for an empty view.
func (s Str) Data() *byte { return s.ptr }

// Len returns the length of the view in bytes.
func (s Str) Len() int { return int(s.len) }

// String copies the viewed text into a Go string.
func (s Str) String() string {
	if s.ptr == nil || s.len == 0 {
		return ""
	}
	return string(unsafe.Slice(s.ptr, s.len))
}

// ByteSlice is a non-owning view of raw bytes with the same layout as Str.
type ByteSlice struct {
	ptr *byte
	len uintptr
}

// NewByteSlice borrows b. The returned view must not outlive the call it is passed to.
func NewByteSlice(b []byte) ByteSlice {
	if len(b) == 0 {
		return ByteSlice{}
	}
	return ByteSlice{ptr: unsafe.SliceData(b), len: uintptr(len(b))}
}

// Data returns the address of the first byte, or nil for an empty view.
func (b ByteSlice) Data() *byte { return b.ptr }

// Len returns the length of the view in bytes.
func (b ByteSlice) Len() int { return int(b.len) }

// Bytes copies the viewed bytes. An empty view yields nil.
func (b ByteSlice) Bytes() []byte {
	if b.ptr == nil || b.len == 0 {
		return nil
	}
	out := make([]byte, b.len)
	copy(out, unsafe.Slice(b.ptr, b.len))
	return out
}
