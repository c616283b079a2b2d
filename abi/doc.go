// Package abi declares the constructor table that the host hands to the
// binding at startup.
//
// Every foreign exception kind is described by one signature in a small
// declaration language:
//
//	# comment
//	ctor already_exists_exception(keyspace: str, table: str);
//	ctor request_invalid_exception(message: str) @reserved;
//
// Parameter types are str (borrowed UTF-8 view), bytes (borrowed byte view)
// and i32. The order of declarations is the order of function pointers in
// the C table. The default table is embedded and parsed once at init; the
// abigen command renders it as a C header or C# declarations.
package abi
