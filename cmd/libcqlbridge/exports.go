//go:build cgo && cqlbridge

package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../native
#include <stdbool.h>
#include <stdint.h>
#include "cqlbridge.h"

typedef struct {
	int32_t connect_timeout_millis;
	bool tcp_nodelay;
	bool keepalive;
	int64_t tcp_keepalive_interval_millis;
} cqlb_socket_options;
*/
import "C"

import (
	"runtime/cgo"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/native"
)

var (
	logger   = loggerFromEnv()
	registry atomic.Pointer[exception.Registry]
)

func installed() *exception.Registry {
	r := registry.Load()
	if r == nil {
		panic("cqlbridge: cqlb_install_constructors was not called")
	}
	return r
}

func goString(s C.cqlb_str) string {
	if s.ptr == nil || s.len == 0 {
		return ""
	}
	return C.GoStringN((*C.char)(unsafe.Pointer(s.ptr)), C.int(s.len))
}

func sessionOf(h C.uintptr_t) *session {
	return cgo.Handle(h).Value().(*session)
}

// cqlb_install_constructors installs the host's exception constructors. It
// returns false, and logs why, when the table is incomplete.
//
//export cqlb_install_constructors
func cqlb_install_constructors(table *C.cqlb_exception_constructors) C.bool {
	r, err := native.Install(unsafe.Pointer(table),
		exception.WithLogger(logger),
		exception.WithMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Error("install exception constructors", zap.Error(err))
		return false
	}
	registry.Store(r)
	return true
}

// cqlb_session_create opens a session and stores its handle in *out.
//
//export cqlb_session_create
func cqlb_session_create(contactPoints, keyspace C.cqlb_str, opts C.cqlb_socket_options, out *C.uintptr_t) C.cqlb_exception {
	r := installed()
	so := newSocketOptions(int32(opts.connect_timeout_millis), bool(opts.tcp_nodelay),
		bool(opts.keepalive), int64(opts.tcp_keepalive_interval_millis))

	s, err := openSession(goString(contactPoints), goString(keyspace), so, logger)
	if err != nil {
		return C.cqlb_exception(exception.Translate(err, r).Raw())
	}
	*out = C.uintptr_t(cgo.NewHandle(s))
	return nil
}

// cqlb_session_execute runs a statement. timeout_ms <= 0 uses the session
// request timeout.
//
//export cqlb_session_execute
func cqlb_session_execute(h C.uintptr_t, statement C.cqlb_str, timeoutMs C.int32_t) C.cqlb_exception {
	r := installed()
	err := sessionOf(h).execute(goString(statement), time.Duration(timeoutMs)*time.Millisecond)
	return C.cqlb_exception(exception.Translate(err, r).Raw())
}

// cqlb_session_prepare prepares a statement.
//
//export cqlb_session_prepare
func cqlb_session_prepare(h C.uintptr_t, statement C.cqlb_str) C.cqlb_exception {
	r := installed()
	err := sessionOf(h).prepare(goString(statement))
	return C.cqlb_exception(exception.Translate(err, r).Raw())
}

// cqlb_session_free closes the session and releases its handle.
//
//export cqlb_session_free
func cqlb_session_free(h C.uintptr_t) {
	handle := cgo.Handle(h)
	handle.Value().(*session).close()
	handle.Delete()
}
