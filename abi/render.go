package abi

import (
	"fmt"
	"io"
	"text/template"
)

// RenderConfig controls the names used in generated bindings.
type RenderConfig struct {
	// Prefix is prepended to every C identifier.
	Prefix string
	// TableName is the name of the constructor table struct, without prefix.
	TableName string
	// Namespace is the C# namespace of generated declarations.
	Namespace string
	// Source is an optional description of the table origin, included in the header comment.
	Source string
}

// DefaultConfig returns the naming used by the native package.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Prefix:    "cqlb",
		TableName: "exception_constructors",
		Namespace: "CqlBridge.Native",
	}
}

func (c RenderConfig) withDefaults() RenderConfig {
	d := DefaultConfig()
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.TableName == "" {
		c.TableName = d.TableName
	}
	if c.Namespace == "" {
		c.Namespace = d.Namespace
	}
	return c
}

// --- Template context types ---

type renderData struct {
	Prefix    string
	Guard     string
	Table     string
	TableType string
	Namespace string
	Source    string
	Ctors     []ctorCtx
}

type ctorCtx struct {
	Name     string // table field name
	FnType   string // C function pointer typedef
	GoName   string // PascalCase name used by C#
	Reserved bool
	CParams  string
	CSParams string
}

func buildRenderData(t *Table, cfg RenderConfig) *renderData {
	cfg = cfg.withDefaults()
	data := &renderData{
		Prefix:    cfg.Prefix,
		Guard:     ToUpperSnake(cfg.Prefix+"_"+cfg.TableName) + "_H",
		Table:     cfg.TableName,
		TableType: cfg.Prefix + "_" + cfg.TableName,
		Namespace: cfg.Namespace,
		Source:    cfg.Source,
	}
	for _, s := range t.Signatures {
		ctx := ctorCtx{
			Name:     s.Name,
			FnType:   cfg.Prefix + "_" + s.Name + "_fn",
			GoName:   ToPascalCase(s.Name),
			Reserved: s.Reserved,
		}
		for i, p := range s.Params {
			if i > 0 {
				ctx.CParams += ", "
				ctx.CSParams += ", "
			}
			ctx.CParams += fmt.Sprintf("%s %s", cType(cfg.Prefix, p.Type), p.Name)
			ctx.CSParams += fmt.Sprintf("%s %s", csType(p.Type), ToCamelCase(p.Name))
		}
		data.Ctors = append(data.Ctors, ctx)
	}
	return data
}

func cType(prefix string, t ArgType) string {
	switch t {
	case ArgStr:
		return prefix + "_str"
	case ArgBytes:
		return prefix + "_bytes"
	default:
		return "int32_t"
	}
}

func csType(t ArgType) string {
	switch t {
	case ArgStr:
		return "FFIString"
	case ArgBytes:
		return "FFIByteSlice"
	default:
		return "int"
	}
}

// RenderC writes a C header declaring the view types, one function pointer
// typedef per constructor and the constructor table struct.
func RenderC(w io.Writer, t *Table, cfg RenderConfig) error {
	return cTemplate.Execute(w, buildRenderData(t, cfg))
}

// RenderCSharp writes C# delegate declarations and the matching table struct.
func RenderCSharp(w io.Writer, t *Table, cfg RenderConfig) error {
	return csTemplate.Execute(w, buildRenderData(t, cfg))
}

// --- Templates ---

var cTemplate = template.Must(template.New("c").Parse(`/* Code generated by abigen. DO NOT EDIT. */
{{- if .Source}}
/* Source: {{.Source}} */
{{- end}}

#ifndef {{.Guard}}
#define {{.Guard}}

#include <stddef.h>
#include <stdint.h>

/* Borrowed views. Valid only for the duration of the call that receives them. */
typedef struct {
    const uint8_t *ptr;
    size_t len;
} {{.Prefix}}_str;

typedef struct {
    const uint8_t *ptr;
    size_t len;
} {{.Prefix}}_bytes;

/* Opaque host exception object. NULL means no exception. */
typedef void *{{.Prefix}}_exception;
{{range .Ctors}}
{{- if .Reserved}}
/* reserved */
{{- end}}
typedef {{$.Prefix}}_exception (*{{.FnType}})({{.CParams}});
{{- end}}

typedef struct {{.TableType}} {
{{- range .Ctors}}
    {{.FnType}} {{.Name}};
{{- end}}
} {{.TableType}};

#endif /* {{.Guard}} */
`))

var csTemplate = template.Must(template.New("cs").Parse(`// Code generated by abigen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

using System;
using System.Runtime.InteropServices;

namespace {{.Namespace}}
{
{{- range .Ctors}}
{{- if .Reserved}}
    // Reserved: not produced by the binding yet.
{{- end}}
    [UnmanagedFunctionPointer(CallingConvention.Cdecl)]
    internal delegate IntPtr {{.GoName}}Constructor({{.CSParams}});
{{end}}
    [StructLayout(LayoutKind.Sequential)]
    internal struct ExceptionConstructors
    {
{{- range .Ctors}}
        public IntPtr {{.GoName}};
{{- end}}
    }
}
`))
