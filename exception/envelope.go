package exception

import (
	"github.com/go-faster/errors"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/CaliLuke/go-cqlbridge/abi"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// EnvelopeFunc is a single host entry point that receives every constructor
// call as a MessagePack-encoded Envelope.
type EnvelopeFunc func(payload ffi.ByteSlice) ffi.ExceptionPtr

// Envelope is the encoded form of one constructor call. Args follow the
// declared signature of Kind: str as string, bytes as []byte, i32 as int32.
type Envelope struct {
	Kind string `msgpack:"kind"`
	Args []any  `msgpack:"args"`
}

type rawEnvelope struct {
	Kind string               `msgpack:"kind"`
	Args []msgpack.RawMessage `msgpack:"args"`
}

// EnvelopeConstructors returns a full constructor set that forwards every
// call to dispatch. The payload is borrowed for the duration of the call.
// Only the logger option is used: a call that cannot be encoded is logged
// and sent as an empty payload.
func EnvelopeConstructors(dispatch EnvelopeFunc, opts ...Option) map[Kind]Constructor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctors := make(map[Kind]Constructor, numKinds)
	for k := range numKinds {
		send := func(args ...any) ffi.ExceptionPtr {
			payload, err := msgpack.Marshal(&Envelope{Kind: k.String(), Args: args})
			if err != nil {
				o.logger.Error("encode exception envelope", zap.Stringer("kind", k), zap.Error(err))
				payload = nil
			}
			return dispatch(ffi.NewByteSlice(payload))
		}

		shape := k.Signature().Shape()
		switch {
		case len(shape) == 1:
			ctors[k] = MessageConstructor(func(m ffi.Str) ffi.ExceptionPtr {
				return send(m.String())
			})
		case shape[1] == abi.ArgI32:
			ctors[k] = TimeoutConstructor(func(addr ffi.Str, ms int32) ffi.ExceptionPtr {
				return send(addr.String(), ms)
			})
		case shape[1] == abi.ArgBytes:
			ctors[k] = MessageBytesConstructor(func(m ffi.Str, b ffi.ByteSlice) ffi.ExceptionPtr {
				return send(m.String(), b.Bytes())
			})
		default:
			ctors[k] = PairConstructor(func(a, b ffi.Str) ffi.ExceptionPtr {
				return send(a.String(), b.String())
			})
		}
	}
	return ctors
}

// DecodeEnvelope decodes a payload produced by an EnvelopeConstructors
// constructor. Each argument is decoded by the declared signature of the
// envelope's kind.
func DecodeEnvelope(payload []byte) (Envelope, error) {
	if len(payload) == 0 {
		return Envelope{}, errors.New("exception: empty envelope")
	}
	var raw rawEnvelope
	if err := msgpack.Unmarshal(payload, &raw); err != nil {
		return Envelope{}, errors.Wrap(err, "decode envelope")
	}
	kind, ok := KindByName(raw.Kind)
	if !ok {
		return Envelope{}, errors.Errorf("exception: envelope for unknown kind %q", raw.Kind)
	}
	shape := kind.Signature().Shape()
	if len(raw.Args) != len(shape) {
		return Envelope{}, errors.Errorf("exception: envelope for %s has %d arguments, want %d",
			kind, len(raw.Args), len(shape))
	}

	env := Envelope{Kind: raw.Kind, Args: make([]any, len(shape))}
	for i, t := range shape {
		v, err := decodeArg(raw.Args[i], t)
		if err != nil {
			return Envelope{}, errors.Wrapf(err, "decode %s argument %d", kind, i)
		}
		env.Args[i] = v
	}
	return env, nil
}

func decodeArg(raw msgpack.RawMessage, t abi.ArgType) (any, error) {
	switch t {
	case abi.ArgStr:
		var s string
		err := msgpack.Unmarshal(raw, &s)
		return s, err
	case abi.ArgBytes:
		var b []byte
		err := msgpack.Unmarshal(raw, &b)
		return b, err
	default:
		var n int32
		err := msgpack.Unmarshal(raw, &n)
		return n, err
	}
}
