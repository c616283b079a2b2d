// Package cql models the errors a CQL driver reports to the boundary and
// maps them onto host exceptions.
//
// The model mirrors how a request fails: a paging operation fails with a
// *PagerExecutionError wrapping a *NextPageError, which wraps a
// *RequestError, which wraps either the last *AttemptError or a
// *RequestTimeoutError. Session setup fails with a *NewSessionError and
// statement preparation with a *PrepareError. Each of the three top-level
// errors implements exception.Translator.
//
// Errors returned by github.com/gocql/gocql are converted into this model by
// QueryError, SessionError and PrepareFailure.
package cql
