//go:build cgo && cqlbridge

package native

import (
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaliLuke/go-cqlbridge/cql"
	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

func installHost(t *testing.T) *exception.Registry {
	t.Helper()
	reg, err := Install(newHostTable())
	require.NoError(t, err)
	return reg
}

func mustHostCall(t *testing.T, ptr ffi.ExceptionPtr) hostCall {
	t.Helper()
	require.False(t, ptr.IsNull())
	c, ok := lookupHostCall(ptr)
	require.True(t, ok, "handle %v was not returned by the C host", ptr)
	return c
}

func TestInstall_NilTable(t *testing.T) {
	_, err := Install(nil)
	assert.ErrorIs(t, err, ErrNilTable)
}

func TestInstall_NullEntry(t *testing.T) {
	_, err := Install(newHostTableWithoutTraceRejected())

	var regErr *exception.RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, exception.KindTraceRejected, regErr.Kind)
	assert.True(t, errors.Is(err, exception.ErrNilConstructor))
}

func TestTrampoline_AlreadyExists(t *testing.T) {
	reg := installHost(t)

	c := mustHostCall(t, reg.AlreadyExists("ks1", "t1"))
	assert.Equal(t, exception.KindAlreadyExists, c.Kind)
	assert.Equal(t, []string{"ks1", "t1"}, c.Strs)
	assert.Equal(t, 1, hostCallCount())
}

func TestTrampoline_PreparedQueryNotFound(t *testing.T) {
	reg := installHost(t)

	c := mustHostCall(t, reg.PreparedQueryNotFound("unknown id", []byte{0x01, 0x02, 0xFF}))
	assert.Equal(t, exception.KindPreparedQueryNotFound, c.Kind)
	assert.Equal(t, []string{"unknown id"}, c.Strs)
	assert.Equal(t, []byte{0x01, 0x02, 0xFF}, c.Bytes)
}

func TestTrampoline_OperationTimedOut(t *testing.T) {
	reg := installHost(t)

	c := mustHostCall(t, reg.OperationTimedOut("10.0.0.1:9042", 1500*time.Millisecond))
	assert.Equal(t, exception.KindOperationTimedOut, c.Kind)
	assert.Equal(t, []string{"10.0.0.1:9042"}, c.Strs)
	assert.Equal(t, int32(1500), c.I32)
}

func TestTrampoline_EveryMessageKind(t *testing.T) {
	reg := installHost(t)

	for _, k := range exception.Kinds() {
		if len(k.Signature().Params) != 1 {
			continue
		}
		c := mustHostCall(t, reg.Message(k, k.String()))
		assert.Equal(t, k, c.Kind)
		assert.Equal(t, []string{k.String()}, c.Strs)
	}
}

func TestTrampoline_EmptyViews(t *testing.T) {
	reg := installHost(t)

	c := mustHostCall(t, reg.PreparedQueryNotFound("", nil))
	assert.Equal(t, []string{""}, c.Strs)
	assert.Empty(t, c.Bytes)
}

func TestTrampoline_TranslatesDriverErrors(t *testing.T) {
	reg := installHost(t)

	err := &cql.PagerExecutionError{Err: &cql.NextPageError{Err: &cql.RequestError{
		Err: &cql.AttemptError{Err: &cql.DbError{Code: cql.CodeSyntaxError, Message: "line 1:0"}},
	}}}
	c := mustHostCall(t, exception.Translate(err, reg))
	assert.Equal(t, exception.KindSyntaxError, c.Kind)
	assert.Equal(t, []string{"line 1:0"}, c.Strs)

	c = mustHostCall(t, exception.Translate(errors.New("boom"), reg))
	assert.Equal(t, exception.KindGeneric, c.Kind)
	assert.Equal(t, []string{exception.GenericPrefix + "boom"}, c.Strs)

	assert.True(t, exception.Translate(nil, reg).IsNull())
	assert.Equal(t, 2, hostCallCount())
}
