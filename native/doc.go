// Package native installs a host-supplied C table of exception constructors
// as an exception.Registry.
//
// The table layout is declared in cqlbridge.h, generated by abigen from the
// constructor table in package abi. Building the package requires cgo and
// the cqlbridge build tag:
//
//	go build -tags cqlbridge ./...
package native

//go:generate go run ../abi/cmd/abigen c --out cqlbridge.h
