package exception

import (
	"fmt"

	"github.com/CaliLuke/go-cqlbridge/abi"
)

// Kind identifies one foreign exception constructor. Kinds are positions in
// the constructor table declared by abi.Default.
type Kind uint8

const (
	// KindGeneric is the fallback for errors no rule maps.
	KindGeneric Kind = iota
	KindFunctionFailure
	KindInvalidConfigurationInQuery
	KindNoHostAvailable
	KindOperationTimedOut
	KindPreparedQueryNotFound
	// KindRequestInvalid is reserved: no rule produces it yet.
	KindRequestInvalid
	KindSyntaxError
	// KindTraceRejected is reserved: no rule produces it yet.
	KindTraceRejected
	KindTruncate
	KindUnauthorized
	KindAlreadyExists
	KindInvalidQuery

	numKinds
)

var kindNames = [numKinds]string{
	KindGeneric:                     "generic_exception",
	KindFunctionFailure:             "function_failure_exception",
	KindInvalidConfigurationInQuery: "invalid_configuration_in_query_exception",
	KindNoHostAvailable:             "no_host_available_exception",
	KindOperationTimedOut:           "operation_timed_out_exception",
	KindPreparedQueryNotFound:       "prepared_query_not_found_exception",
	KindRequestInvalid:              "request_invalid_exception",
	KindSyntaxError:                 "syntax_error_exception",
	KindTraceRejected:               "trace_rejected_exception",
	KindTruncate:                    "truncate_exception",
	KindUnauthorized:                "unauthorized_exception",
	KindAlreadyExists:               "already_exists_exception",
	KindInvalidQuery:                "invalid_query_exception",
}

var signatures [numKinds]abi.Signature

func init() {
	table := abi.Default()
	if len(table.Signatures) != int(numKinds) {
		panic(fmt.Sprintf("exception: constructor table has %d entries, want %d",
			len(table.Signatures), numKinds))
	}
	for k := range numKinds {
		sig := table.Signatures[k]
		if sig.Name != kindNames[k] {
			panic(fmt.Sprintf("exception: table entry %d is %q, want %q", k, sig.Name, kindNames[k]))
		}
		signatures[k] = sig
	}
}

// Kinds returns every kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := range numKinds {
		out = append(out, k)
	}
	return out
}

// KindByName finds the kind declared under name in the constructor table.
func KindByName(name string) (Kind, bool) {
	for k := range numKinds {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Signature returns the declared constructor signature of k.
func (k Kind) Signature() abi.Signature {
	if !k.Valid() {
		return abi.Signature{}
	}
	return signatures[k]
}

// Reserved reports whether k is kept in the table without being produced.
func (k Kind) Reserved() bool {
	return k.Valid() && signatures[k].Reserved
}
