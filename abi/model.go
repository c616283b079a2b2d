package abi

import (
	"fmt"
	"slices"
)

// ArgType is the type of one constructor parameter.
type ArgType uint8

const (
	// ArgStr is a borrowed UTF-8 text view.
	ArgStr ArgType = iota + 1
	// ArgBytes is a borrowed byte view.
	ArgBytes
	// ArgI32 is a signed 32-bit integer passed by value.
	ArgI32
)

var argTypeNames = map[string]ArgType{
	"str":   ArgStr,
	"bytes": ArgBytes,
	"i32":   ArgI32,
}

// ParseArgType maps a type keyword of the declaration language to an ArgType.
func ParseArgType(s string) (ArgType, error) {
	t, ok := argTypeNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown parameter type %q", s)
	}
	return t, nil
}

func (t ArgType) String() string {
	switch t {
	case ArgStr:
		return "str"
	case ArgBytes:
		return "bytes"
	case ArgI32:
		return "i32"
	default:
		return fmt.Sprintf("ArgType(%d)", uint8(t))
	}
}

// Param is one named, typed constructor parameter.
type Param struct {
	Name string
	Type ArgType
}

// Signature describes one constructor: its table name, ordered parameters
// and whether the binding currently produces it.
type Signature struct {
	Name   string
	Params []Param
	// Reserved marks entries that keep the table layout stable but are not
	// produced by any classification rule yet.
	Reserved bool
}

// Shape returns the ordered parameter types.
func (s Signature) Shape() []ArgType {
	shape := make([]ArgType, len(s.Params))
	for i, p := range s.Params {
		shape[i] = p.Type
	}
	return shape
}

func (s Signature) String() string {
	out := s.Name + "("
	for i, p := range s.Params {
		if i > 0 {
			out += ", "
		}
		out += p.Name + ": " + p.Type.String()
	}
	out += ")"
	if s.Reserved {
		out += " @reserved"
	}
	return out
}

// Table is an ordered set of constructor signatures. Tables are read-only
// once parsed.
type Table struct {
	Signatures []Signature
}

// Lookup finds a signature by name.
func (t *Table) Lookup(name string) (Signature, bool) {
	for _, s := range t.Signatures {
		if s.Name == name {
			return s, true
		}
	}
	return Signature{}, false
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{Signatures: make([]Signature, len(t.Signatures))}
	for i, s := range t.Signatures {
		s.Params = slices.Clone(s.Params)
		out.Signatures[i] = s
	}
	return out
}

// SignatureError reports an invalid declaration.
type SignatureError struct {
	Name   string
	Reason string
}

// Error returns the error message for SignatureError.
func (e *SignatureError) Error() string {
	return fmt.Sprintf("abi: constructor %q: %s", e.Name, e.Reason)
}
