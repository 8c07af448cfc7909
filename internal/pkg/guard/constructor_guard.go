// Package guard provides ConstructorGuard, a marker embedded in aggregates,
// value objects, commands and queries to tell a constructed instance apart
// from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object went through its constructor.
//
// Example usage:
//
//	type RunAssignmentCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRunAssignmentCommand() RunAssignmentCommand {
//	    return RunAssignmentCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c RunAssignmentCommand) Validate() error {
//	    return c.guard.Validate(ErrRunAssignmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
