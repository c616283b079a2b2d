// Package ffi provides the plain-data types that cross the foreign-function
// boundary: borrowed text and byte views, and opaque pointers to objects that
// live on the host side.
//
// Nothing in this package allocates or copies on the hot path. A Str or
// ByteSlice borrows the memory of the value it was built from and is only
// valid for the duration of the boundary call that receives it. Hosts must
// copy the contents if they need them after the call returns.
package ffi
