// Package guard implements the constructor guard pattern used by commands,
// queries, and value objects to detect zero-value instances that bypassed
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// supplied for a zero-value guard. It ensures validation always fails with
// a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it in a struct and call Validate in the struct's Validate method;
// a zero-value struct fails the check.
//
// Example:
//
//	type ApproveCommand struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewApproveCommand(id kernel.UUID) (ApproveCommand, error) {
//	    if err := id.Validate(); err != nil {
//	        return ApproveCommand{}, err
//	    }
//	    return ApproveCommand{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApproveCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
