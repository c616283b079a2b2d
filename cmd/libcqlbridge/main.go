// Command libcqlbridge is built with -buildmode=c-shared. It exposes gocql
// sessions to a native host and reports every failure as an exception built
// by the host's constructors.
//
//	go build -tags cqlbridge -buildmode=c-shared -o libcqlbridge.so ./cmd/libcqlbridge
//
// The host must call cqlb_install_constructors once before any other entry
// point. Logging is off unless CQLBRIDGE_LOG_LEVEL is set (debug, info,
// warn, error).
package main

func main() {}
