package cql

import (
	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

var (
	requestPath = exception.Path(
		exception.Layer[*PagerExecutionError](),
		exception.Layer[*NextPageError](),
		exception.Layer[*RequestError](),
	)
	attemptPath = exception.Path(requestPath, exception.Layer[*AttemptError]())
	poolPath    = exception.Path(
		exception.Layer[*NewSessionError](),
		exception.Layer[*MetadataError](),
	)
)

// dbMessageKinds maps server error codes whose exception takes only the
// server message.
var dbMessageKinds = map[ErrorCode]exception.Kind{
	CodeInvalid:         exception.KindInvalidQuery,
	CodeSyntaxError:     exception.KindSyntaxError,
	CodeUnauthorized:    exception.KindUnauthorized,
	CodeFunctionFailure: exception.KindFunctionFailure,
	CodeTruncateError:   exception.KindTruncate,
	CodeConfigError:     exception.KindInvalidConfigurationInQuery,
}

var queryRules = []exception.Rule{
	exception.Leaf(attemptPath, func(e *DbError, r *exception.Registry) (ffi.ExceptionPtr, bool) {
		switch e.Code {
		case CodeAlreadyExists:
			return r.AlreadyExists(e.Keyspace, e.Table), true
		case CodeUnprepared:
			return r.PreparedQueryNotFound(e.Message, e.StatementID), true
		}
		kind, ok := dbMessageKinds[e.Code]
		if !ok {
			return ffi.ExceptionPtr{}, false
		}
		return r.Message(kind, e.Message), true
	}),
	exception.Leaf(requestPath, func(e *RequestTimeoutError, r *exception.Registry) (ffi.ExceptionPtr, bool) {
		return r.OperationTimedOut(e.Address, e.Timeout), true
	}),
}

var sessionRules = []exception.Rule{
	exception.Leaf(poolPath, func(e *ConnectionPoolError, r *exception.Registry) (ffi.ExceptionPtr, bool) {
		if e.State != PoolBroken {
			return ffi.ExceptionPtr{}, false
		}
		conn, ok := e.LastConnErr.(*ConnectionError)
		if !ok || conn == nil || conn.Kind != ConnIO || conn.Err == nil {
			return ffi.ExceptionPtr{}, false
		}
		if !ClassifyIO(conn.Err).HostUnavailable() {
			return ffi.ExceptionPtr{}, false
		}
		return r.Message(exception.KindNoHostAvailable, conn.Err.Error()), true
	}),
}

// ToException maps server errors and request timeouts to their exceptions.
func (e *PagerExecutionError) ToException(r *exception.Registry) ffi.ExceptionPtr {
	return exception.Classify(e, r, queryRules...)
}

// ToException reports unreachable hosts as no_host_available_exception.
func (e *NewSessionError) ToException(r *exception.Registry) ffi.ExceptionPtr {
	return exception.Classify(e, r, sessionRules...)
}

// ToException always uses the generic constructor.
func (e *PrepareError) ToException(r *exception.Registry) ffi.ExceptionPtr {
	return r.Generic(e)
}

var (
	_ exception.Translator = (*PagerExecutionError)(nil)
	_ exception.Translator = (*NewSessionError)(nil)
	_ exception.Translator = (*PrepareError)(nil)
)
