package cql

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

// ErrEmptyPlan is returned when the load balancer offers no host to try.
var ErrEmptyPlan = errors.New("load balancing policy returned an empty plan")

// --- Query path ---

// PagerExecutionError is returned by paged query execution.
type PagerExecutionError struct {
	Err error
}

func (e *PagerExecutionError) Error() string {
	return fmt.Sprintf("paged query failed: %v", e.Err)
}

func (e *PagerExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NextPageError is returned when fetching one page fails.
type NextPageError struct {
	Err error
}

func (e *NextPageError) Error() string {
	return fmt.Sprintf("failed to fetch next page: %v", e.Err)
}

func (e *NextPageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError is the outcome of a request after the retry policy gave up.
// Err is the *AttemptError of the last attempt, a *RequestTimeoutError, or
// ErrEmptyPlan.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AttemptError describes why a single attempt against one host failed.
type AttemptError struct {
	Host string
	Err  error
}

func (e *AttemptError) Error() string {
	if e.Host == "" {
		return fmt.Sprintf("attempt failed: %v", e.Err)
	}
	return fmt.Sprintf("attempt on %s failed: %v", e.Host, e.Err)
}

func (e *AttemptError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestTimeoutError is returned when the client-side request timeout
// expires. Address is the host the request was sent to, if known.
type RequestTimeoutError struct {
	Timeout time.Duration
	Address string
}

func (e *RequestTimeoutError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("request timed out after %s", e.Timeout)
	}
	return fmt.Sprintf("request to %s timed out after %s", e.Address, e.Timeout)
}

// DbError is an error frame returned by the server. Only the fields of the
// code's variant are set.
type DbError struct {
	Code    ErrorCode
	Message string

	// CodeAlreadyExists. Table is empty when a keyspace already exists.
	Keyspace string
	Table    string

	// CodeUnprepared.
	StatementID []byte

	// CodeFunctionFailure. Keyspace is shared with CodeAlreadyExists.
	Function string
	ArgTypes []string
}

func (e *DbError) Error() string {
	return fmt.Sprintf("database returned an error: %s: %s", e.Code, e.Message)
}

// BrokenConnectionError is returned when the connection carrying an attempt
// broke before a response arrived.
type BrokenConnectionError struct {
	Err error
}

func (e *BrokenConnectionError) Error() string {
	return fmt.Sprintf("connection broken: %v", e.Err)
}

func (e *BrokenConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// --- Session path ---

// NewSessionError is returned when a session cannot be created.
type NewSessionError struct {
	Err error
}

func (e *NewSessionError) Error() string {
	return fmt.Sprintf("failed to create session: %v", e.Err)
}

func (e *NewSessionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MetadataError is returned when the initial cluster metadata fetch fails.
type MetadataError struct {
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata fetch failed: %v", e.Err)
}

func (e *MetadataError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PoolState is the state of a host connection pool.
type PoolState uint8

const (
	// PoolInitializing means no connection attempt has finished yet.
	PoolInitializing PoolState = iota
	// PoolBroken means every connection attempt failed.
	PoolBroken
	// PoolClosed means the pool was shut down.
	PoolClosed
)

func (s PoolState) String() string {
	switch s {
	case PoolInitializing:
		return "initializing"
	case PoolBroken:
		return "broken"
	case PoolClosed:
		return "closed"
	default:
		return fmt.Sprintf("PoolState(%d)", uint8(s))
	}
}

// ConnectionPoolError is returned when no connection from a pool is usable.
// LastConnErr is set for broken pools.
type ConnectionPoolError struct {
	State       PoolState
	LastConnErr error
}

func (e *ConnectionPoolError) Error() string {
	if e.LastConnErr == nil {
		return fmt.Sprintf("connection pool %s", e.State)
	}
	return fmt.Sprintf("connection pool %s, last connection error: %v", e.State, e.LastConnErr)
}

func (e *ConnectionPoolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.LastConnErr
}

// ConnErrorKind says at which stage a connection failed.
type ConnErrorKind uint8

const (
	// ConnIO is a transport-level failure; Err is the I/O error.
	ConnIO ConnErrorKind = iota
	// ConnTimeout means the connect timeout expired.
	ConnTimeout
	// ConnSetup means the startup or authentication handshake failed.
	ConnSetup
	// ConnBroken means an established connection was lost.
	ConnBroken
)

func (k ConnErrorKind) String() string {
	switch k {
	case ConnIO:
		return "io error"
	case ConnTimeout:
		return "connect timeout"
	case ConnSetup:
		return "setup failed"
	case ConnBroken:
		return "broken"
	default:
		return fmt.Sprintf("ConnErrorKind(%d)", uint8(k))
	}
}

// ConnectionError is returned when a single connection cannot be opened.
type ConnectionError struct {
	Kind ConnErrorKind
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection %s: %v", e.Kind, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// --- Prepare path ---

// PrepareError is returned when a statement cannot be prepared on any host.
type PrepareError struct {
	Statement string
	Err       error
}

func (e *PrepareError) Error() string {
	return fmt.Sprintf("failed to prepare %q: %v", e.Statement, e.Err)
}

func (e *PrepareError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
