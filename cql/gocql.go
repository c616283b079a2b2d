package cql

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/gocql/gocql"
)

// QueryError converts an error returned by a gocql query into the request
// model. host is the address the query was sent to and timeout the request
// timeout that was in effect; both end up in RequestTimeoutError.
func QueryError(err error, host string, timeout time.Duration) error {
	if err == nil {
		return nil
	}
	var cause error
	switch {
	case errors.Is(err, gocql.ErrTimeoutNoResponse), errors.Is(err, context.DeadlineExceeded):
		cause = &RequestTimeoutError{Timeout: timeout, Address: host}
	case errors.Is(err, gocql.ErrNoConnections):
		cause = fmt.Errorf("%w: %w", ErrEmptyPlan, err)
	default:
		cause = &AttemptError{Host: host, Err: attemptCause(err)}
	}
	return &PagerExecutionError{Err: &NextPageError{Err: &RequestError{Err: cause}}}
}

func attemptCause(err error) error {
	var (
		exists     *gocql.RequestErrAlreadyExists
		unprepared *gocql.RequestErrUnprepared
		failure    *gocql.RequestErrFunctionFailure
		frame      gocql.RequestError
	)
	switch {
	case errors.As(err, &exists):
		return &DbError{
			Code:     CodeAlreadyExists,
			Message:  exists.Message(),
			Keyspace: exists.Keyspace,
			Table:    exists.Table,
		}
	case errors.As(err, &unprepared):
		return &DbError{
			Code:        CodeUnprepared,
			Message:     unprepared.Message(),
			StatementID: unprepared.StatementId,
		}
	case errors.As(err, &failure):
		return &DbError{
			Code:     CodeFunctionFailure,
			Message:  failure.Message(),
			Keyspace: failure.Keyspace,
			Function: failure.Function,
			ArgTypes: failure.ArgTypes,
		}
	case errors.As(err, &frame):
		return &DbError{Code: ErrorCode(frame.Code()), Message: frame.Message()}
	case errors.Is(err, gocql.ErrConnectionClosed):
		return &BrokenConnectionError{Err: err}
	}
	return err
}

// SessionError converts an error returned by gocql.ClusterConfig.CreateSession
// into the session model. Dial failures become a broken pool whose last
// connection error is the I/O error.
func SessionError(err error) error {
	if err == nil {
		return nil
	}
	if ioErr := dialError(err); ioErr != nil {
		return &NewSessionError{Err: &MetadataError{Err: &ConnectionPoolError{
			State:       PoolBroken,
			LastConnErr: &ConnectionError{Kind: ConnIO, Err: ioErr},
		}}}
	}
	if errors.Is(err, gocql.ErrNoConnectionsStarted) {
		return &NewSessionError{Err: &MetadataError{Err: &ConnectionPoolError{
			State:       PoolBroken,
			LastConnErr: &ConnectionError{Kind: ConnSetup, Err: err},
		}}}
	}
	return &NewSessionError{Err: err}
}

// PrepareFailure wraps an error returned while preparing stmt.
func PrepareFailure(stmt string, err error) error {
	if err == nil {
		return nil
	}
	return &PrepareError{Statement: stmt, Err: err}
}

// dialError extracts the I/O error behind a failed session. gocql formats
// most setup errors with %v, so when the chain is gone the errno is
// recovered from the text of the net package's error.
func dialError(err error) error {
	var op *net.OpError
	if errors.As(err, &op) {
		return op
	}
	msg := err.Error()
	for _, t := range dialTexts {
		if i := strings.Index(msg, t.text); i >= 0 {
			return &textIOError{msg: ioMessage(msg, i+len(t.text)), err: t.err}
		}
	}
	return nil
}

var dialTexts = []struct {
	text string
	err  error
}{
	{"connection refused", syscall.ECONNREFUSED},
	{"permission denied", syscall.EACCES},
	{"operation not permitted", syscall.EPERM},
	{"connection timed out", syscall.ETIMEDOUT},
	{"i/o timeout", os.ErrDeadlineExceeded},
	{"no route to host", syscall.EHOSTUNREACH},
	{"network is unreachable", syscall.ENETUNREACH},
	{"connection reset by peer", syscall.ECONNRESET},
}

// ioMessage trims gocql's prefixes, keeping the innermost "dial ..." part.
func ioMessage(msg string, end int) string {
	msg = msg[:end]
	if i := strings.LastIndex(msg, "dial "); i >= 0 {
		return msg[i:]
	}
	return msg
}

type textIOError struct {
	msg string
	err error
}

func (e *textIOError) Error() string { return e.msg }

func (e *textIOError) Unwrap() error { return e.err }
