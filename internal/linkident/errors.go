// Package linkident provides the hook-identity scaffolding shared by every
// intrusive container in this module: a container-identity token that hooks
// adopt on insertion and release on removal, so that a double-insert, a
// cross-container remove, or a use of an element after its container has
// gone away is caught by a debug assertion rather than silently corrupting
// memory.
//
// Every exported failure here is a programmer error: there are no
// recoverable operational errors in these containers, so these all panic.
package linkident

import "fmt"

// PreconditionError is the panic value raised by a violated container
// precondition (double insert, cross-container remove, and so on). It
// supports errors.As so a caller that chooses to recover at an API boundary
// can still distinguish "this library was misused" from other panics.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

// Fail panics with a *PreconditionError built from format and args.
func Fail(format string, args ...any) {
	panic(&PreconditionError{Msg: fmt.Sprintf(format, args...)})
}
