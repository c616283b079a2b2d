package cql

import (
	"context"
	"net"
	"os"
	"syscall"

	"github.com/go-faster/errors"
)

// IOKind is the category of an I/O failure.
type IOKind uint8

const (
	// IOOther is any failure not listed below, including nil.
	IOOther IOKind = iota
	// IORefused means the peer refused the connection (ECONNREFUSED).
	IORefused
	// IOTimedOut covers ETIMEDOUT, expired deadlines and net.Error timeouts.
	IOTimedOut
	// IONotConnected means the socket is not connected (ENOTCONN).
	IONotConnected
	// IOPermissionDenied covers EACCES, EPERM and os.ErrPermission.
	IOPermissionDenied
	// IOReset means the peer reset or closed the connection (ECONNRESET, EPIPE).
	IOReset
	// IOUnreachable means no route to the host or network.
	IOUnreachable
)

func (k IOKind) String() string {
	switch k {
	case IORefused:
		return "connection refused"
	case IOTimedOut:
		return "timed out"
	case IONotConnected:
		return "not connected"
	case IOPermissionDenied:
		return "permission denied"
	case IOReset:
		return "connection reset"
	case IOUnreachable:
		return "unreachable"
	default:
		return "other"
	}
}

// HostUnavailable reports whether the kind means the host could not be
// reached at all.
func (k IOKind) HostUnavailable() bool {
	switch k {
	case IORefused, IOTimedOut, IONotConnected:
		return true
	}
	return false
}

// ClassifyIO returns the kind of the I/O failure err wraps.
func ClassifyIO(err error) IOKind {
	switch {
	case err == nil:
		return IOOther
	case errors.Is(err, syscall.ECONNREFUSED):
		return IORefused
	case errors.Is(err, syscall.ENOTCONN):
		return IONotConnected
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM), errors.Is(err, os.ErrPermission):
		return IOPermissionDenied
	case errors.Is(err, syscall.ECONNRESET), errors.Is(err, syscall.EPIPE):
		return IOReset
	case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return IOUnreachable
	case errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded):
		return IOTimedOut
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return IOTimedOut
	}
	return IOOther
}
