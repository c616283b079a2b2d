package abi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTable = `
# two constructors
ctor plain(message: str);
ctor timed_out(address: str, timeout_ms: i32);
ctor with_id(message: str, unknown_id: bytes) @reserved;
`

func TestParse_Signatures(t *testing.T) {
	table, err := Parse("test.abi", testTable)
	require.NoError(t, err)
	require.Len(t, table.Signatures, 3)

	plain := table.Signatures[0]
	assert.Equal(t, "plain", plain.Name)
	assert.Equal(t, []ArgType{ArgStr}, plain.Shape())
	assert.False(t, plain.Reserved)

	timed := table.Signatures[1]
	assert.Equal(t, []Param{{Name: "address", Type: ArgStr}, {Name: "timeout_ms", Type: ArgI32}}, timed.Params)

	withID := table.Signatures[2]
	assert.Equal(t, []ArgType{ArgStr, ArgBytes}, withID.Shape())
	assert.True(t, withID.Reserved)
	assert.Equal(t, "with_id(message: str, unknown_id: bytes) @reserved", withID.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "# nothing\n"},
		{"syntax", "ctor broken(message str);"},
		{"missing semicolon", "ctor a(message: str)"},
		{"unknown type", "ctor a(message: string);"},
		{"no params", "ctor a();"},
		{"duplicate ctor", "ctor a(m: str); ctor a(m: str);"},
		{"duplicate param", "ctor a(m: str, m: i32);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.abi", tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParse_SignatureError(t *testing.T) {
	_, err := Parse("bad.abi", "ctor a(m: float);")
	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
	assert.Equal(t, "a", sigErr.Name)
	assert.Contains(t, sigErr.Error(), `unknown parameter type "float"`)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctors.abi")
	require.NoError(t, os.WriteFile(path, []byte(testTable), 0o600))

	table, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, table.Signatures, 3)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.abi"))
	assert.Error(t, err)
}

func TestDefault_Table(t *testing.T) {
	table := Default()
	require.Len(t, table.Signatures, 13)

	want := []struct {
		name     string
		shape    []ArgType
		reserved bool
	}{
		{"generic_exception", []ArgType{ArgStr}, false},
		{"function_failure_exception", []ArgType{ArgStr}, false},
		{"invalid_configuration_in_query_exception", []ArgType{ArgStr}, false},
		{"no_host_available_exception", []ArgType{ArgStr}, false},
		{"operation_timed_out_exception", []ArgType{ArgStr, ArgI32}, false},
		{"prepared_query_not_found_exception", []ArgType{ArgStr, ArgBytes}, false},
		{"request_invalid_exception", []ArgType{ArgStr}, true},
		{"syntax_error_exception", []ArgType{ArgStr}, false},
		{"trace_rejected_exception", []ArgType{ArgStr}, true},
		{"truncate_exception", []ArgType{ArgStr}, false},
		{"unauthorized_exception", []ArgType{ArgStr}, false},
		{"already_exists_exception", []ArgType{ArgStr, ArgStr}, false},
		{"invalid_query_exception", []ArgType{ArgStr}, false},
	}
	for i, w := range want {
		sig := table.Signatures[i]
		assert.Equal(t, w.name, sig.Name, "entry %d", i)
		assert.Equal(t, w.shape, sig.Shape(), w.name)
		assert.Equal(t, w.reserved, sig.Reserved, w.name)
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a.Signatures[0].Params[0].Name = "changed"

	b := Default()
	assert.Equal(t, "message", b.Signatures[0].Params[0].Name)
}

func TestTable_Lookup(t *testing.T) {
	table := Default()

	sig, ok := table.Lookup("already_exists_exception")
	require.True(t, ok)
	assert.Equal(t, "keyspace", sig.Params[0].Name)
	assert.Equal(t, "table", sig.Params[1].Name)

	_, ok = table.Lookup("nope")
	assert.False(t, ok)
}

func TestArgType_String(t *testing.T) {
	assert.Equal(t, "str", ArgStr.String())
	assert.Equal(t, "bytes", ArgBytes.String())
	assert.Equal(t, "i32", ArgI32.String())
	assert.Equal(t, "ArgType(9)", ArgType(9).String())
}
