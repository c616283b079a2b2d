package ffi

import (
	"fmt"
	"unsafe"
)

// Ptr is a typed opaque pointer to an object owned by the host. The type
// parameter only tags the pointer; Go code never reads through it.
type Ptr[T any] struct {
	_ [0]*T
	p unsafe.Pointer
}

// NewPtr wraps a raw host address.
func NewPtr[T any](p unsafe.Pointer) Ptr[T] {
	return Ptr[T]{p: p}
}

// IsNull reports whether the pointer refers to no object.
func (p Ptr[T]) IsNull() bool { return p.p == nil }

// Raw returns the address so it can be handed back across the boundary.
func (p Ptr[T]) Raw() unsafe.Pointer { return p.p }

func (p Ptr[T]) String() string {
	return fmt.Sprintf("ffi.Ptr(%p)", p.p)
}

// Exception tags pointers to host exception objects. It has no values.
type Exception struct{ _ [0]func() }

// ExceptionPtr points to an exception constructed by the host. The zero value
// is null and means that no exception is being reported.
type ExceptionPtr = Ptr[Exception]

// NewExceptionPtr wraps the address returned by a host constructor.
func NewExceptionPtr(p unsafe.Pointer) ExceptionPtr {
	return NewPtr[Exception](p)
}
