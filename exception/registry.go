package exception

import (
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// GenericPrefix starts every message passed to the generic constructor.
const GenericPrefix = "Go exception: "

// Builder collects host constructors and validates them once.
type Builder struct {
	ctors [numKinds]Constructor
	opts  options
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{opts: o}
}

// Register sets the constructor for kind. The constructor's shape must equal
// the declared signature of kind.
func (b *Builder) Register(kind Kind, c Constructor) error {
	if err := b.check(kind, c); err != nil {
		b.opts.logger.Warn("rejecting exception constructor",
			zap.Stringer("kind", kind), zap.Error(err))
		return err
	}
	b.ctors[kind] = c
	return nil
}

func (b *Builder) check(kind Kind, c Constructor) error {
	if !kind.Valid() {
		return &RegistrationError{Kind: kind, Err: ErrUnknownKind}
	}
	if c == nil || c.isNil() {
		return &RegistrationError{Kind: kind, Err: ErrNilConstructor}
	}
	if b.ctors[kind] != nil {
		return &RegistrationError{Kind: kind, Err: ErrDuplicate}
	}
	want := kind.Signature().Shape()
	if got := c.Shape(); !slices.Equal(got, want) {
		return &RegistrationError{
			Kind:   kind,
			Err:    ErrShapeMismatch,
			Detail: fmt.Sprintf("got %v, want %v", got, want),
		}
	}
	return nil
}

// RegisterAll registers every entry of ctors, stopping at the first error.
// Entries are registered in kind order so errors are deterministic.
func (b *Builder) RegisterAll(ctors map[Kind]Constructor) error {
	kinds := make([]Kind, 0, len(ctors))
	for k := range ctors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		if err := b.Register(k, ctors[k]); err != nil {
			return err
		}
	}
	return nil
}

// Build returns the immutable Registry. Every kind, reserved ones included,
// must have a constructor.
func (b *Builder) Build() (*Registry, error) {
	for k := range numKinds {
		if b.ctors[k] == nil {
			err := &RegistrationError{Kind: k, Err: ErrMissing}
			b.opts.logger.Warn("exception registry incomplete", zap.Error(err))
			return nil, err
		}
	}

	ctors := b.ctors
	if b.opts.metrics != nil {
		counters, err := newCounters(b.opts.metrics)
		if err != nil {
			return nil, err
		}
		for k := range numKinds {
			ctors[k] = instrument(ctors[k], counters[k])
		}
	}

	r := &Registry{placeholder: b.opts.placeholder}
	for k := range numKinds {
		switch c := ctors[k].(type) {
		case MessageConstructor:
			r.messages[k] = c
		case TimeoutConstructor:
			r.timedOut = c
		case MessageBytesConstructor:
			r.notFound = c
		case PairConstructor:
			r.alreadyExists = c
		}
	}

	b.opts.logger.Debug("exception constructors registered",
		zap.Int("kinds", int(numKinds)),
		zap.Bool("metrics", b.opts.metrics != nil),
		zap.String("placeholder_address", r.placeholder))
	return r, nil
}

// Registry holds one validated constructor per kind. It is created by
// Builder.Build and never changes afterwards.
type Registry struct {
	messages      [numKinds]MessageConstructor
	timedOut      TimeoutConstructor
	notFound      MessageBytesConstructor
	alreadyExists PairConstructor
	placeholder   string
}

// Message calls the message-only constructor of kind. Kinds with another
// shape fall back to the generic constructor so the call still yields an
// exception.
func (r *Registry) Message(kind Kind, message string) ffi.ExceptionPtr {
	if kind.Valid() && r.messages[kind] != nil {
		return r.messages[kind](ffi.NewStr(message))
	}
	return r.messages[KindGeneric](ffi.NewStr(GenericPrefix + message))
}

// OperationTimedOut calls the timed-out constructor. An empty address is
// replaced by the configured placeholder; the timeout is truncated to whole
// milliseconds and clamped to the int32 range.
func (r *Registry) OperationTimedOut(address string, timeout time.Duration) ffi.ExceptionPtr {
	if address == "" {
		address = r.placeholder
	}
	return r.timedOut(ffi.NewStr(address), timeoutMillis(timeout))
}

// PreparedQueryNotFound calls the prepared-query-not-found constructor with
// the raw statement id.
func (r *Registry) PreparedQueryNotFound(message string, statementID []byte) ffi.ExceptionPtr {
	return r.notFound(ffi.NewStr(message), ffi.NewByteSlice(statementID))
}

// AlreadyExists calls the already-exists constructor. An empty table means
// the keyspace itself exists.
func (r *Registry) AlreadyExists(keyspace, table string) ffi.ExceptionPtr {
	return r.alreadyExists(ffi.NewStr(keyspace), ffi.NewStr(table))
}

// Generic renders err after GenericPrefix and calls the generic constructor.
func (r *Registry) Generic(err error) ffi.ExceptionPtr {
	// fmt recovers from panicking Error methods and prints typed nils.
	return r.messages[KindGeneric](ffi.NewStr(GenericPrefix + fmt.Sprint(err)))
}

// PlaceholderAddress returns the address reported when none is known.
func (r *Registry) PlaceholderAddress() string {
	return r.placeholder
}

func timeoutMillis(d time.Duration) int32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(ms)
	}
}
