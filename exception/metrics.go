package exception

import (
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/CaliLuke/go-cqlbridge/ffi"
)

func newCounters(reg prometheus.Registerer) ([numKinds]prometheus.Counter, error) {
	var counters [numKinds]prometheus.Counter

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cqlbridge",
		Name:      "exceptions_constructed_total",
		Help:      "Foreign exceptions constructed, by constructor kind.",
	}, []string{"kind"})
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return counters, errors.Wrap(err, "register exception metrics")
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return counters, errors.Wrap(err, "register exception metrics")
		}
		vec = existing
	}

	for k := range numKinds {
		counters[k] = vec.WithLabelValues(k.String())
	}
	return counters, nil
}

// instrument wraps c so that every call increments counter. The wrapper has
// the same shape as c.
func instrument(c Constructor, counter prometheus.Counter) Constructor {
	switch fn := c.(type) {
	case MessageConstructor:
		return MessageConstructor(func(m ffi.Str) ffi.ExceptionPtr {
			counter.Inc()
			return fn(m)
		})
	case TimeoutConstructor:
		return TimeoutConstructor(func(addr ffi.Str, ms int32) ffi.ExceptionPtr {
			counter.Inc()
			return fn(addr, ms)
		})
	case MessageBytesConstructor:
		return MessageBytesConstructor(func(m ffi.Str, b ffi.ByteSlice) ffi.ExceptionPtr {
			counter.Inc()
			return fn(m, b)
		})
	case PairConstructor:
		return PairConstructor(func(a, b ffi.Str) ffi.ExceptionPtr {
			counter.Inc()
			return fn(a, b)
		})
	default:
		return c
	}
}
