package exception

import (
	"github.com/go-faster/errors"

	"github.com/CaliLuke/go-cqlbridge/ffi"
)

// Translator is implemented by error types that know which exception
// represents them on the host side. New error types join the boundary by
// implementing it; callers of Translate do not change.
type Translator interface {
	ToException(r *Registry) ffi.ExceptionPtr
}

// Translate converts err into a host exception. A nil error yields the null
// pointer, which boundary calls use to report success. If err, or any error
// it wraps, implements Translator, that translation is used; anything else
// goes to the generic constructor.
func Translate(err error, r *Registry) ffi.ExceptionPtr {
	if err == nil {
		return ffi.ExceptionPtr{}
	}
	var t Translator
	if errors.As(err, &t) {
		return t.ToException(r)
	}
	return r.Generic(err)
}
