package cql

import "fmt"

// ErrorCode is a CQL native protocol error code.
type ErrorCode int32

// Error codes defined by the native protocol, version 4.
const (
	CodeServerError     ErrorCode = 0x0000
	CodeProtocolError   ErrorCode = 0x000A
	CodeBadCredentials  ErrorCode = 0x0100
	CodeUnavailable     ErrorCode = 0x1000
	CodeOverloaded      ErrorCode = 0x1001
	CodeIsBootstrapping ErrorCode = 0x1002
	CodeTruncateError   ErrorCode = 0x1003
	CodeWriteTimeout    ErrorCode = 0x1100
	CodeReadTimeout     ErrorCode = 0x1200
	CodeReadFailure     ErrorCode = 0x1300
	CodeFunctionFailure ErrorCode = 0x1400
	CodeWriteFailure    ErrorCode = 0x1500
	CodeCDCWriteFailure ErrorCode = 0x1600
	CodeCASWriteUnknown ErrorCode = 0x1700
	CodeSyntaxError     ErrorCode = 0x2000
	CodeUnauthorized    ErrorCode = 0x2100
	CodeInvalid         ErrorCode = 0x2200
	CodeConfigError     ErrorCode = 0x2300
	CodeAlreadyExists   ErrorCode = 0x2400
	CodeUnprepared      ErrorCode = 0x2500
)

var codeNames = map[ErrorCode]string{
	CodeServerError:     "server error",
	CodeProtocolError:   "protocol error",
	CodeBadCredentials:  "bad credentials",
	CodeUnavailable:     "unavailable",
	CodeOverloaded:      "overloaded",
	CodeIsBootstrapping: "is bootstrapping",
	CodeTruncateError:   "truncate error",
	CodeWriteTimeout:    "write timeout",
	CodeReadTimeout:     "read timeout",
	CodeReadFailure:     "read failure",
	CodeFunctionFailure: "function failure",
	CodeWriteFailure:    "write failure",
	CodeCDCWriteFailure: "cdc write failure",
	CodeCASWriteUnknown: "cas write unknown",
	CodeSyntaxError:     "syntax error",
	CodeUnauthorized:    "unauthorized",
	CodeInvalid:         "invalid",
	CodeConfigError:     "config error",
	CodeAlreadyExists:   "already exists",
	CodeUnprepared:      "unprepared",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error code 0x%04X", int32(c))
}
