package exception

import (
	"reflect"

	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// --- Steps: walking nested errors one layer at a time ---

// Step descends one layer of a nested error. It reports false when err is
// not the expected layer.
type Step func(err error) (error, bool)

// Unwrapper is an error layer with exactly one cause.
type Unwrapper interface {
	error
	Unwrap() error
}

// Layer matches an error whose dynamic type is exactly T and descends into
// its cause. Unlike errors.As it never skips layers, so a rule only fires for
// the precise nesting it names. Nil layers and nil causes do not match.
func Layer[T Unwrapper]() Step {
	return func(err error) (error, bool) {
		w, ok := err.(T)
		if !ok || isNil(w) {
			return nil, false
		}
		next := w.Unwrap()
		if isNil(next) {
			return nil, false
		}
		return next, true
	}
}

// Path composes steps; it matches only when every step matches in order.
// An empty Path matches any non-nil error and returns it unchanged.
func Path(steps ...Step) Step {
	return func(err error) (error, bool) {
		if isNil(err) {
			return nil, false
		}
		for _, step := range steps {
			var ok bool
			if err, ok = step(err); !ok {
				return nil, false
			}
		}
		return err, true
	}
}

// --- Rules ---

// Rule maps one error shape to a constructor call. It reports false, without
// calling any constructor, when err does not have the shape.
type Rule func(err error, r *Registry) (ffi.ExceptionPtr, bool)

// Leaf builds a Rule that follows path and hands the innermost error to
// build when its dynamic type is T. build may still decline by returning
// false, for example when a field has an unmapped value.
func Leaf[T error](path Step, build func(leaf T, r *Registry) (ffi.ExceptionPtr, bool)) Rule {
	return func(err error, r *Registry) (ffi.ExceptionPtr, bool) {
		inner, ok := path(err)
		if !ok {
			return ffi.ExceptionPtr{}, false
		}
		leaf, ok := inner.(T)
		if !ok || isNil(leaf) {
			return ffi.ExceptionPtr{}, false
		}
		return build(leaf, r)
	}
}

// Classify applies rules in order and returns the first match. When no rule
// matches it calls the generic constructor with the rendered error, so every
// input yields exactly one constructor call.
func Classify(err error, r *Registry, rules ...Rule) ffi.ExceptionPtr {
	for _, rule := range rules {
		if ptr, ok := rule(err, r); ok {
			return ptr
		}
	}
	return r.Generic(err)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
