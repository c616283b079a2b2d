// Package cqlbridge translates CQL driver errors into exceptions built by a
// native host, across a C function-pointer boundary.
//
// The host hands over one constructor per exception kind; every driver
// failure is reported as exactly one constructed exception, falling back to
// a generic exception carrying the rendered error.
//
// The module is organized into these packages:
//
//   - [github.com/CaliLuke/go-cqlbridge/ffi]: borrowed string and byte views, opaque host pointers
//   - [github.com/CaliLuke/go-cqlbridge/abi]: constructor signature table, C and C# renderers
//   - [github.com/CaliLuke/go-cqlbridge/exception]: constructor registry, classification machinery, the Translator contract
//   - [github.com/CaliLuke/go-cqlbridge/cql]: driver error model, classification rules, gocql adapter
//   - [github.com/CaliLuke/go-cqlbridge/native]: installs a C constructor table (requires cgo)
//
// The ffi, abi, exception and cql packages compile and test without cgo.
// Only native and cmd/libcqlbridge need cgo and the cqlbridge build tag.
package cqlbridge
