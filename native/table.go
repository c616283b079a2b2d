//go:build cgo && cqlbridge

package native

/*
#include "cqlbridge.h"

static cqlb_exception cqlb_call_str(void *fn, const uint8_t *p, size_t n) {
	cqlb_str s = { p, n };
	return ((cqlb_exception (*)(cqlb_str))fn)(s);
}

static cqlb_exception cqlb_call_str_i32(void *fn, const uint8_t *p, size_t n, int32_t v) {
	cqlb_str s = { p, n };
	return ((cqlb_exception (*)(cqlb_str, int32_t))fn)(s, v);
}

static cqlb_exception cqlb_call_str_bytes(void *fn, const uint8_t *p, size_t n, const uint8_t *bp, size_t bn) {
	cqlb_str s = { p, n };
	cqlb_bytes b = { bp, bn };
	return ((cqlb_exception (*)(cqlb_str, cqlb_bytes))fn)(s, b);
}

static cqlb_exception cqlb_call_str_str(void *fn, const uint8_t *p, size_t n, const uint8_t *p2, size_t n2) {
	cqlb_str a = { p, n };
	cqlb_str b = { p2, n2 };
	return ((cqlb_exception (*)(cqlb_str, cqlb_str))fn)(a, b);
}
*/
import "C"

import (
	"unsafe"

	"github.com/go-faster/errors"

	"github.com/CaliLuke/go-cqlbridge/abi"
	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// ErrNilTable is returned by Install for a NULL table pointer.
var ErrNilTable = errors.New("native: nil constructor table")

// Install reads a cqlb_exception_constructors table and returns a registry
// calling its function pointers. The table is copied; the function pointers
// must stay valid for the life of the process.
func Install(table unsafe.Pointer, opts ...exception.Option) (*exception.Registry, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	t := (*C.cqlb_exception_constructors)(table)
	fns := [...]unsafe.Pointer{
		exception.KindGeneric:                     unsafe.Pointer(t.generic_exception),
		exception.KindFunctionFailure:             unsafe.Pointer(t.function_failure_exception),
		exception.KindInvalidConfigurationInQuery: unsafe.Pointer(t.invalid_configuration_in_query_exception),
		exception.KindNoHostAvailable:             unsafe.Pointer(t.no_host_available_exception),
		exception.KindOperationTimedOut:           unsafe.Pointer(t.operation_timed_out_exception),
		exception.KindPreparedQueryNotFound:       unsafe.Pointer(t.prepared_query_not_found_exception),
		exception.KindRequestInvalid:              unsafe.Pointer(t.request_invalid_exception),
		exception.KindSyntaxError:                 unsafe.Pointer(t.syntax_error_exception),
		exception.KindTraceRejected:               unsafe.Pointer(t.trace_rejected_exception),
		exception.KindTruncate:                    unsafe.Pointer(t.truncate_exception),
		exception.KindUnauthorized:                unsafe.Pointer(t.unauthorized_exception),
		exception.KindAlreadyExists:               unsafe.Pointer(t.already_exists_exception),
		exception.KindInvalidQuery:                unsafe.Pointer(t.invalid_query_exception),
	}

	b := exception.NewBuilder(opts...)
	for k, fn := range fns {
		kind := exception.Kind(k)
		if fn == nil {
			return nil, &exception.RegistrationError{Kind: kind, Err: exception.ErrNilConstructor}
		}
		if err := b.Register(kind, trampoline(kind.Signature(), fn)); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// trampoline wraps fn in the constructor type matching sig.
func trampoline(sig abi.Signature, fn unsafe.Pointer) exception.Constructor {
	shape := sig.Shape()
	switch {
	case len(shape) == 1:
		return exception.MessageConstructor(func(m ffi.Str) ffi.ExceptionPtr {
			p, n := view(m.Data(), m.Len())
			return ffi.NewExceptionPtr(unsafe.Pointer(C.cqlb_call_str(fn, p, n)))
		})
	case shape[1] == abi.ArgI32:
		return exception.TimeoutConstructor(func(addr ffi.Str, ms int32) ffi.ExceptionPtr {
			p, n := view(addr.Data(), addr.Len())
			return ffi.NewExceptionPtr(unsafe.Pointer(C.cqlb_call_str_i32(fn, p, n, C.int32_t(ms))))
		})
	case shape[1] == abi.ArgBytes:
		return exception.MessageBytesConstructor(func(m ffi.Str, b ffi.ByteSlice) ffi.ExceptionPtr {
			p, n := view(m.Data(), m.Len())
			bp, bn := view(b.Data(), b.Len())
			return ffi.NewExceptionPtr(unsafe.Pointer(C.cqlb_call_str_bytes(fn, p, n, bp, bn)))
		})
	default:
		return exception.PairConstructor(func(a, b ffi.Str) ffi.ExceptionPtr {
			p, n := view(a.Data(), a.Len())
			p2, n2 := view(b.Data(), b.Len())
			return ffi.NewExceptionPtr(unsafe.Pointer(C.cqlb_call_str_str(fn, p, n, p2, n2)))
		})
	}
}

func view(data *byte, n int) (*C.uint8_t, C.size_t) {
	return (*C.uint8_t)(unsafe.Pointer(data)), C.size_t(n)
}
