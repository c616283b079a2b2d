// Package exception turns Go errors into exception objects built by the
// embedding host.
//
// The host supplies one constructor per exception Kind once, at startup. A
// Builder checks every constructor against the declared argument shape of
// its kind (see package abi) and produces an immutable Registry. After that
// no call is validated again: the Registry only packages arguments into
// borrowed ffi views and invokes the constructor.
//
// Classification is expressed as ordered Rules. A Rule walks the layers of a
// nested error with Steps (Layer, Path) and, when the innermost error has
// the expected shape, calls one typed Registry helper. Classify tries rules
// in order and always ends with the generic constructor, so every error
// yields exactly one exception.
//
// Error types that can cross the boundary implement Translator. Translate is
// the single entry point used by boundary code.
//
// A Registry is safe for concurrent use: it is never mutated after Build.
package exception
