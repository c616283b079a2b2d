package cql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyIO(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want IOKind
	}{
		{"nil", nil, IOOther},
		{"refused", syscall.ECONNREFUSED, IORefused},
		{"refused in op error", &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, IORefused},
		{"not connected", syscall.ENOTCONN, IONotConnected},
		{"errno timeout", syscall.ETIMEDOUT, IOTimedOut},
		{"deadline", os.ErrDeadlineExceeded, IOTimedOut},
		{"context", fmt.Errorf("dial: %w", context.DeadlineExceeded), IOTimedOut},
		{"net timeout", &net.OpError{Op: "dial", Err: timeoutErr{}}, IOTimedOut},
		{"access", syscall.EACCES, IOPermissionDenied},
		{"perm", syscall.EPERM, IOPermissionDenied},
		{"os permission", os.ErrPermission, IOPermissionDenied},
		{"reset", syscall.ECONNRESET, IOReset},
		{"pipe", syscall.EPIPE, IOReset},
		{"host unreachable", syscall.EHOSTUNREACH, IOUnreachable},
		{"other", errors.New("boom"), IOOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIO(tt.err))
		})
	}
}

func TestIOKind_HostUnavailable(t *testing.T) {
	for _, k := range []IOKind{IORefused, IOTimedOut, IONotConnected} {
		assert.True(t, k.HostUnavailable(), k.String())
	}
	for _, k := range []IOKind{IOOther, IOPermissionDenied, IOReset, IOUnreachable} {
		assert.False(t, k.HostUnavailable(), k.String())
	}
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "already exists", CodeAlreadyExists.String())
	assert.Equal(t, "error code 0x7777", ErrorCode(0x7777).String())
}

func dialErr(errno error) error {
	return &net.OpError{
		Op:   "dial",
		Net:  "tcp",
		Addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9042},
		Err:  os.NewSyscallError("connect", errno),
	}
}

func TestIOKind_String(t *testing.T) {
	assert.Equal(t, "connection refused", IORefused.String())
	assert.Equal(t, "permission denied", IOPermissionDenied.String())
	assert.Equal(t, "other", IOKind(200).String())
}
