// Package exceptiontest provides an in-process host for tests of code that
// translates errors into exceptions.
package exceptiontest

import (
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// Call is one recorded constructor invocation. Arguments are copied out of
// the borrowed views while the call is running.
type Call struct {
	Kind exception.Kind
	// Strs holds the text arguments in parameter order.
	Strs []string
	// Bytes holds the byte argument, if the signature has one.
	Bytes []byte
	// I32 holds the integer argument, if the signature has one.
	I32 int32
}

// Message returns the first text argument.
func (c Call) Message() string {
	if len(c.Strs) == 0 {
		return ""
	}
	return c.Strs[0]
}

// Recorder is a host whose constructors record their arguments and return a
// distinct non-null pointer per call. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []*Call
}

func (r *Recorder) record(c *Call) ffi.ExceptionPtr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return ffi.NewExceptionPtr(unsafe.Pointer(c))
}

// Constructors returns one recording constructor per kind.
func (r *Recorder) Constructors() map[exception.Kind]exception.Constructor {
	ctors := make(map[exception.Kind]exception.Constructor)
	for _, k := range exception.Kinds() {
		switch k {
		case exception.KindOperationTimedOut:
			ctors[k] = exception.TimeoutConstructor(func(addr ffi.Str, ms int32) ffi.ExceptionPtr {
				return r.record(&Call{Kind: k, Strs: []string{addr.String()}, I32: ms})
			})
		case exception.KindPreparedQueryNotFound:
			ctors[k] = exception.MessageBytesConstructor(func(m ffi.Str, b ffi.ByteSlice) ffi.ExceptionPtr {
				return r.record(&Call{Kind: k, Strs: []string{m.String()}, Bytes: b.Bytes()})
			})
		case exception.KindAlreadyExists:
			ctors[k] = exception.PairConstructor(func(a, b ffi.Str) ffi.ExceptionPtr {
				return r.record(&Call{Kind: k, Strs: []string{a.String(), b.String()}})
			})
		default:
			ctors[k] = exception.MessageConstructor(func(m ffi.Str) ffi.ExceptionPtr {
				return r.record(&Call{Kind: k, Strs: []string{m.String()}})
			})
		}
	}
	return ctors
}

// Registry builds a Registry backed by r, failing the test on error.
func (r *Recorder) Registry(tb testing.TB, opts ...exception.Option) *exception.Registry {
	tb.Helper()
	b := exception.NewBuilder(opts...)
	if err := b.RegisterAll(r.Constructors()); err != nil {
		tb.Fatalf("registering recorder constructors: %v", err)
	}
	reg, err := b.Build()
	if err != nil {
		tb.Fatalf("building registry: %v", err)
	}
	return reg
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	for i, c := range r.calls {
		out[i] = *c
	}
	return out
}

// Lookup returns the call that produced ptr.
func (r *Recorder) Lookup(ptr ffi.ExceptionPtr) (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if unsafe.Pointer(c) == ptr.Raw() {
			return *c, true
		}
	}
	return Call{}, false
}

// MustLookup is like Lookup but fails the test when ptr was not produced by r.
func (r *Recorder) MustLookup(tb testing.TB, ptr ffi.ExceptionPtr) Call {
	tb.Helper()
	c, ok := r.Lookup(ptr)
	if !ok {
		tb.Fatalf("pointer %v was not produced by this recorder", ptr)
	}
	return c
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (c Call) String() string {
	return fmt.Sprintf("%s%q", c.Kind, c.Strs)
}
