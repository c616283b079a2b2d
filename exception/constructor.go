package exception

import (
	"github.com/CaliLuke/go-cqlbridge/abi"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// Constructor is a host function building one kind of exception. It is one
// of MessageConstructor, TimeoutConstructor, MessageBytesConstructor or
// PairConstructor; Shape reports the parameter types it accepts.
//
// The views passed to a constructor are borrowed for the duration of the
// call. Implementations must copy anything they keep.
type Constructor interface {
	Shape() []abi.ArgType
	isNil() bool
}

// MessageConstructor builds an exception from a message.
type MessageConstructor func(message ffi.Str) ffi.ExceptionPtr

// Shape implements Constructor.
func (MessageConstructor) Shape() []abi.ArgType { return []abi.ArgType{abi.ArgStr} }

func (c MessageConstructor) isNil() bool { return c == nil }

// TimeoutConstructor builds an exception from a target address and a
// timeout in milliseconds.
type TimeoutConstructor func(address ffi.Str, timeoutMs int32) ffi.ExceptionPtr

// Shape implements Constructor.
func (TimeoutConstructor) Shape() []abi.ArgType { return []abi.ArgType{abi.ArgStr, abi.ArgI32} }

func (c TimeoutConstructor) isNil() bool { return c == nil }

// MessageBytesConstructor builds an exception from a message and a raw byte
// payload such as a statement id.
type MessageBytesConstructor func(message ffi.Str, data ffi.ByteSlice) ffi.ExceptionPtr

// Shape implements Constructor.
func (MessageBytesConstructor) Shape() []abi.ArgType {
	return []abi.ArgType{abi.ArgStr, abi.ArgBytes}
}

func (c MessageBytesConstructor) isNil() bool { return c == nil }

// PairConstructor builds an exception from two text fields.
type PairConstructor func(first, second ffi.Str) ffi.ExceptionPtr

// Shape implements Constructor.
func (PairConstructor) Shape() []abi.ArgType { return []abi.ArgType{abi.ArgStr, abi.ArgStr} }

func (c PairConstructor) isNil() bool { return c == nil }
