//go:build cgo && cqlbridge

package native

/*
#include <string.h>
#include "cqlbridge.h"

#define CQLB_TEST_CAP 256
#define CQLB_TEST_MAX_CALLS 64

typedef struct {
	int kind;
	int nstrs;
	char strs[2][CQLB_TEST_CAP];
	size_t lens[2];
	uint8_t bytes[CQLB_TEST_CAP];
	size_t nbytes;
	int32_t i32;
} cqlb_test_call;

static cqlb_test_call cqlb_test_calls[CQLB_TEST_MAX_CALLS];
static int cqlb_test_ncalls;

static size_t cqlb_test_copy(void *dst, const uint8_t *src, size_t n) {
	if (n > CQLB_TEST_CAP) {
		n = CQLB_TEST_CAP;
	}
	if (src != NULL && n > 0) {
		memcpy(dst, src, n);
	}
	return n;
}

static cqlb_exception cqlb_test_record(int kind, int nstrs, cqlb_str a, cqlb_str b, cqlb_bytes bytes, int32_t v) {
	if (cqlb_test_ncalls >= CQLB_TEST_MAX_CALLS) {
		return NULL;
	}
	cqlb_test_call *c = &cqlb_test_calls[cqlb_test_ncalls++];
	memset(c, 0, sizeof(*c));
	c->kind = kind;
	c->nstrs = nstrs;
	c->lens[0] = cqlb_test_copy(c->strs[0], a.ptr, a.len);
	if (nstrs > 1) {
		c->lens[1] = cqlb_test_copy(c->strs[1], b.ptr, b.len);
	}
	c->nbytes = cqlb_test_copy(c->bytes, bytes.ptr, bytes.len);
	c->i32 = v;
	return c;
}

static const cqlb_str cqlb_test_no_str;
static const cqlb_bytes cqlb_test_no_bytes;

#define CQLB_TEST_MESSAGE(idx, name) \
	static cqlb_exception cqlb_test_##name(cqlb_str m) { \
		return cqlb_test_record(idx, 1, m, cqlb_test_no_str, cqlb_test_no_bytes, 0); \
	}

CQLB_TEST_MESSAGE(0, generic_exception)
CQLB_TEST_MESSAGE(1, function_failure_exception)
CQLB_TEST_MESSAGE(2, invalid_configuration_in_query_exception)
CQLB_TEST_MESSAGE(3, no_host_available_exception)
CQLB_TEST_MESSAGE(6, request_invalid_exception)
CQLB_TEST_MESSAGE(7, syntax_error_exception)
CQLB_TEST_MESSAGE(8, trace_rejected_exception)
CQLB_TEST_MESSAGE(9, truncate_exception)
CQLB_TEST_MESSAGE(10, unauthorized_exception)
CQLB_TEST_MESSAGE(12, invalid_query_exception)

static cqlb_exception cqlb_test_operation_timed_out_exception(cqlb_str address, int32_t timeout_ms) {
	return cqlb_test_record(4, 1, address, cqlb_test_no_str, cqlb_test_no_bytes, timeout_ms);
}

static cqlb_exception cqlb_test_prepared_query_not_found_exception(cqlb_str message, cqlb_bytes unknown_id) {
	return cqlb_test_record(5, 1, message, cqlb_test_no_str, unknown_id, 0);
}

static cqlb_exception cqlb_test_already_exists_exception(cqlb_str keyspace, cqlb_str table) {
	return cqlb_test_record(11, 2, keyspace, table, cqlb_test_no_bytes, 0);
}

static cqlb_exception_constructors cqlb_test_table;

static cqlb_exception_constructors *cqlb_test_new_table(void) {
	cqlb_test_ncalls = 0;
	cqlb_test_table.generic_exception = cqlb_test_generic_exception;
	cqlb_test_table.function_failure_exception = cqlb_test_function_failure_exception;
	cqlb_test_table.invalid_configuration_in_query_exception = cqlb_test_invalid_configuration_in_query_exception;
	cqlb_test_table.no_host_available_exception = cqlb_test_no_host_available_exception;
	cqlb_test_table.operation_timed_out_exception = cqlb_test_operation_timed_out_exception;
	cqlb_test_table.prepared_query_not_found_exception = cqlb_test_prepared_query_not_found_exception;
	cqlb_test_table.request_invalid_exception = cqlb_test_request_invalid_exception;
	cqlb_test_table.syntax_error_exception = cqlb_test_syntax_error_exception;
	cqlb_test_table.trace_rejected_exception = cqlb_test_trace_rejected_exception;
	cqlb_test_table.truncate_exception = cqlb_test_truncate_exception;
	cqlb_test_table.unauthorized_exception = cqlb_test_unauthorized_exception;
	cqlb_test_table.already_exists_exception = cqlb_test_already_exists_exception;
	cqlb_test_table.invalid_query_exception = cqlb_test_invalid_query_exception;
	return &cqlb_test_table;
}

static void cqlb_test_clear_trace_rejected(cqlb_exception_constructors *t) {
	t->trace_rejected_exception = NULL;
}

static int cqlb_test_count(void) { return cqlb_test_ncalls; }

static cqlb_test_call *cqlb_test_call_at(int i) { return &cqlb_test_calls[i]; }
*/
import "C"

import (
	"unsafe"

	"github.com/CaliLuke/go-cqlbridge/exception"
	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// hostCall is one call recorded by the C constructors of newHostTable.
type hostCall struct {
	Kind  exception.Kind
	Strs  []string
	Bytes []byte
	I32   int32
}

// newHostTable resets the recorded calls and returns a complete C
// constructor table whose entries record their arguments in C memory.
func newHostTable() unsafe.Pointer {
	return unsafe.Pointer(C.cqlb_test_new_table())
}

// newHostTableWithoutTraceRejected is newHostTable with one NULL entry.
func newHostTableWithoutTraceRejected() unsafe.Pointer {
	t := C.cqlb_test_new_table()
	C.cqlb_test_clear_trace_rejected(t)
	return unsafe.Pointer(t)
}

// hostCallCount returns the number of calls since the last newHostTable.
func hostCallCount() int {
	return int(C.cqlb_test_count())
}

// lookupHostCall returns the call whose returned handle is ptr.
func lookupHostCall(ptr ffi.ExceptionPtr) (hostCall, bool) {
	for i := range hostCallCount() {
		c := C.cqlb_test_call_at(C.int(i))
		if unsafe.Pointer(c) != ptr.Raw() {
			continue
		}
		out := hostCall{Kind: exception.Kind(c.kind), I32: int32(c.i32)}
		for j := range int(c.nstrs) {
			out.Strs = append(out.Strs, C.GoStringN(&c.strs[j][0], C.int(c.lens[j])))
		}
		if c.nbytes > 0 {
			out.Bytes = C.GoBytes(unsafe.Pointer(&c.bytes[0]), C.int(c.nbytes))
		}
		return out, true
	}
	return hostCall{}, false
}
