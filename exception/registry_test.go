package exception_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/exception/exceptiontest"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

func nopMessage(ffi.Str) ffi.ExceptionPtr { return ffi.ExceptionPtr{} }

func TestBuilder_RejectsShapeMismatch(t *testing.T) {
	b := exception.NewBuilder()
	err := b.Register(exception.KindAlreadyExists, exception.MessageConstructor(nopMessage))

	var regErr *exception.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, exception.KindAlreadyExists, regErr.Kind)
	assert.ErrorIs(t, err, exception.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "got [str], want [str str]")
}

func TestBuilder_RejectsNilUnknownAndDuplicate(t *testing.T) {
	b := exception.NewBuilder()

	assert.ErrorIs(t, b.Register(exception.KindSyntaxError, nil), exception.ErrNilConstructor)
	assert.ErrorIs(t, b.Register(exception.KindSyntaxError, exception.MessageConstructor(nil)),
		exception.ErrNilConstructor)
	assert.ErrorIs(t, b.Register(exception.Kind(99), exception.MessageConstructor(nopMessage)),
		exception.ErrUnknownKind)

	require.NoError(t, b.Register(exception.KindSyntaxError, exception.MessageConstructor(nopMessage)))
	assert.ErrorIs(t, b.Register(exception.KindSyntaxError, exception.MessageConstructor(nopMessage)),
		exception.ErrDuplicate)
}

func TestBuilder_BuildRequiresEveryKind(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	ctors := rec.Constructors()
	delete(ctors, exception.KindTraceRejected)

	core, logs := observer.New(zap.WarnLevel)
	b := exception.NewBuilder(exception.WithLogger(zap.New(core)))
	require.NoError(t, b.RegisterAll(ctors))

	_, err := b.Build()
	assert.ErrorIs(t, err, exception.ErrMissing)
	assert.Contains(t, err.Error(), "trace_rejected_exception")
	assert.Equal(t, 1, logs.FilterMessage("exception registry incomplete").Len())
}

func TestRegistry_AlreadyExistsFieldOrder(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	ptr := reg.AlreadyExists("ks1", "t1")
	require.False(t, ptr.IsNull())

	call := rec.MustLookup(t, ptr)
	assert.Equal(t, exception.KindAlreadyExists, call.Kind)
	assert.Equal(t, []string{"ks1", "t1"}, call.Strs)
}

func TestRegistry_PreparedQueryNotFound(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	ptr := reg.PreparedQueryNotFound("unprepared", []byte{0x01, 0x02, 0xFF})

	call := rec.MustLookup(t, ptr)
	assert.Equal(t, exception.KindPreparedQueryNotFound, call.Kind)
	assert.Equal(t, "unprepared", call.Message())
	assert.Equal(t, []byte{0x01, 0x02, 0xFF}, call.Bytes)
}

func TestRegistry_OperationTimedOut(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		timeout time.Duration
		opts    []exception.Option
		wantMs  int32
		want    string
	}{
		{"exact", "10.0.0.1:9042", 1500 * time.Millisecond, nil, 1500, "10.0.0.1:9042"},
		{"truncates", "h:1", 1500*time.Millisecond + 999*time.Microsecond, nil, 1500, "h:1"},
		{"placeholder", "", time.Second, nil, 1000, exception.DefaultPlaceholderAddress},
		{"custom placeholder", "", time.Second,
			[]exception.Option{exception.WithPlaceholderAddress("unknown:0")}, 1000, "unknown:0"},
		{"negative", "h:1", -time.Second, nil, 0, "h:1"},
		{"clamped", "h:1", time.Duration(math.MaxInt64), nil, math.MaxInt32, "h:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &exceptiontest.Recorder{}
			reg := rec.Registry(t, tt.opts...)

			call := rec.MustLookup(t, reg.OperationTimedOut(tt.addr, tt.timeout))
			assert.Equal(t, exception.KindOperationTimedOut, call.Kind)
			assert.Equal(t, tt.wantMs, call.I32)
			assert.Equal(t, tt.want, call.Message())
		})
	}
}

func TestRegistry_MessageKinds(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	for _, k := range []exception.Kind{
		exception.KindFunctionFailure,
		exception.KindInvalidConfigurationInQuery,
		exception.KindNoHostAvailable,
		exception.KindRequestInvalid,
		exception.KindSyntaxError,
		exception.KindTraceRejected,
		exception.KindTruncate,
		exception.KindUnauthorized,
		exception.KindInvalidQuery,
	} {
		call := rec.MustLookup(t, reg.Message(k, "msg "+k.String()))
		assert.Equal(t, k, call.Kind)
		assert.Equal(t, "msg "+k.String(), call.Message())
	}
}

func TestRegistry_MessageWithWrongShapeFallsBack(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	call := rec.MustLookup(t, reg.Message(exception.KindAlreadyExists, "oops"))
	assert.Equal(t, exception.KindGeneric, call.Kind)
	assert.Equal(t, exception.GenericPrefix+"oops", call.Message())

	call = rec.MustLookup(t, reg.Message(exception.Kind(77), "bad kind"))
	assert.Equal(t, exception.KindGeneric, call.Kind)
}

type panicky struct{}

func (*panicky) Error() string { panic("boom") }

func TestRegistry_Generic(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	call := rec.MustLookup(t, reg.Generic(errors.New("broken pipe")))
	assert.Equal(t, exception.KindGeneric, call.Kind)
	assert.Equal(t, "Go exception: broken pipe", call.Message())

	call = rec.MustLookup(t, reg.Generic(nil))
	assert.Equal(t, "Go exception: <nil>", call.Message())

	call = rec.MustLookup(t, reg.Generic(&panicky{}))
	assert.True(t, strings.HasPrefix(call.Message(), exception.GenericPrefix))
	assert.Contains(t, call.Message(), "PANIC")
}

func TestRegistry_BuildLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := &exceptiontest.Recorder{}
	rec.Registry(t, exception.WithLogger(zap.New(core)))

	entries := logs.FilterMessage("exception constructors registered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(13), entries[0].ContextMap()["kinds"])
}

// Views are borrowed: once a call returns the host must not depend on the
// caller's buffers. The recorder copies during the call, so mutating the
// buffers afterwards must not change what it saw.
func TestRegistry_ViewsAreCallScoped(t *testing.T) {
	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(t)

	id := []byte{0x01, 0x02, 0xFF}
	ksBuf := []byte("ks1")
	ptr := reg.PreparedQueryNotFound(string(ksBuf), id)
	id[0], id[1], id[2] = 0, 0, 0
	copy(ksBuf, "xxx")

	call := rec.MustLookup(t, ptr)
	assert.Equal(t, []byte{0x01, 0x02, 0xFF}, call.Bytes)
	assert.Equal(t, "ks1", call.Message())
}

func FuzzRegistry_Views(f *testing.F) {
	f.Add("ks1", "t1", []byte{0x01, 0x02, 0xFF})
	f.Add("", "", []byte(nil))
	f.Add("ключ", "таблица", []byte{0x00})

	rec := &exceptiontest.Recorder{}
	reg := rec.Registry(f)

	f.Fuzz(func(t *testing.T, ks, table string, id []byte) {
		rec.Reset()
		buf := append([]byte(nil), id...)
		want := append([]byte(nil), id...)

		ae := rec.MustLookup(t, reg.AlreadyExists(ks, table))
		nf := rec.MustLookup(t, reg.PreparedQueryNotFound(ks, buf))
		for i := range buf {
			buf[i] ^= 0xFF
		}

		if ae.Strs[0] != ks || ae.Strs[1] != table {
			t.Fatalf("already exists got %q, want [%q %q]", ae.Strs, ks, table)
		}
		if len(want) == 0 {
			want = nil
		}
		assert.Equal(t, want, nf.Bytes)
	})
}
