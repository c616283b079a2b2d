package abi

import (
	_ "embed"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/go-faster/errors"
)

// --- Participle grammar structs ---

// FileDef is the top-level grammar: a sequence of constructor declarations.
type FileDef struct {
	Ctors []*CtorDef `parser:"@@*"`
}

// CtorDef parses: ctor name(param: type, ...) [@reserved];
type CtorDef struct {
	Name     string      `parser:"'ctor' @Ident '('"`
	Params   []*ParamDef `parser:"( @@ ( ',' @@ )* )? ')'"`
	Reserved bool        `parser:"@'@reserved'? ';'"`
}

// ParamDef parses: name: type
type ParamDef struct {
	Name string `parser:"@Ident ':'"`
	Type string `parser:"@Ident"`
}

var sigLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Annot", Pattern: `@[a-z_]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(),:;]`},
})

var sigParser = participle.MustBuild[FileDef](
	participle.Lexer(sigLexer),
	participle.Elide("Comment", "Whitespace"),
)

// --- Entry points ---

// Parse parses and validates a constructor table. The filename is only used
// in error positions.
func Parse(filename, input string) (*Table, error) {
	ast, err := sigParser.ParseString(filename, input)
	if err != nil {
		return nil, errors.Wrap(err, "parse constructor table")
	}
	table, err := convertAST(ast)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// ParseFile reads a constructor table from path and parses it.
func ParseFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read constructor table")
	}
	return Parse(path, string(data))
}

// MustParse is like Parse but panics on error. It is meant for tables
// compiled into the binary.
func MustParse(filename, input string) *Table {
	t, err := Parse(filename, input)
	if err != nil {
		panic(err)
	}
	return t
}

//go:embed constructors.abi
var defaultSource string

var defaultTable = MustParse("constructors.abi", defaultSource)

// Default returns a copy of the built-in constructor table.
func Default() *Table {
	return defaultTable.Clone()
}

// DefaultSource returns the declaration text of the built-in table.
func DefaultSource() string {
	return defaultSource
}

// convertAST validates the parsed declarations and converts them to a Table.
func convertAST(file *FileDef) (*Table, error) {
	if len(file.Ctors) == 0 {
		return nil, errors.New("abi: constructor table is empty")
	}

	table := &Table{}
	seen := make(map[string]bool, len(file.Ctors))
	for _, c := range file.Ctors {
		if seen[c.Name] {
			return nil, &SignatureError{Name: c.Name, Reason: "declared twice"}
		}
		seen[c.Name] = true

		if len(c.Params) == 0 {
			return nil, &SignatureError{Name: c.Name, Reason: "has no parameters"}
		}

		sig := Signature{Name: c.Name, Reserved: c.Reserved}
		params := make(map[string]bool, len(c.Params))
		for _, p := range c.Params {
			if params[p.Name] {
				return nil, &SignatureError{Name: c.Name, Reason: "duplicate parameter " + p.Name}
			}
			params[p.Name] = true

			typ, err := ParseArgType(p.Type)
			if err != nil {
				return nil, &SignatureError{Name: c.Name, Reason: err.Error()}
			}
			sig.Params = append(sig.Params, Param{Name: p.Name, Type: typ})
		}
		table.Signatures = append(table.Signatures, sig)
	}
	return table, nil
}
