package abi

import (
	"strings"
	"unicode"
)

// splitName splits a string on hyphens and underscores.
func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// CommonAcronyms lists abbreviations that are fully uppercased in generated
// identifiers.
var CommonAcronyms = map[string]string{
	"id":  "ID",
	"ms":  "Ms",
	"ffi": "FFI",
	"io":  "IO",
}

// ToPascalCase transforms a snake_case or kebab-case name into PascalCase,
// uppercasing common acronyms.
func ToPascalCase(name string) string {
	var b strings.Builder
	for _, part := range splitName(name) {
		lower := strings.ToLower(part)
		if acronym, ok := CommonAcronyms[lower]; ok {
			b.WriteString(acronym)
			continue
		}
		runes := []rune(lower)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with a lowercase first word.
func ToCamelCase(name string) string {
	parts := splitName(name)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0]) + ToPascalCase(strings.Join(parts[1:], "_"))
}

// ToUpperSnake transforms a name into UPPER_SNAKE_CASE, the form used for
// C macros and include guards.
func ToUpperSnake(name string) string {
	return strings.ToUpper(strings.Join(splitName(name), "_"))
}
