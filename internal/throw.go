package internal

import "github.com/pkg/errors"

// The engine's internals are deep chains of geometric routines; threading
// error returns through all of them would swamp the code for conditions that
// are caller mistakes rather than runtime failures. Instead, precondition
// violations panic, and the public API recovers to convert to an error.
// Numeric degeneracies (parallel lines, coincident points) are not errors at
// all; they are handled by explicit policies where they occur.

type SimplifyError error

// Panic with a SimplifyError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleSimplifyPanicRecover(r interface{}) error {
	if r != nil {
		if simplifyError, ok := r.(SimplifyError); ok {
			return simplifyError
		}
		panic(r)
	}
	return nil
}
