// Package guard implements the constructor-guard pattern for command and value
// objects: a zero-value struct fails validation, one built through its
// constructor passes. This keeps invariant checks inside constructors without
// letting callers bypass them via struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was
// not built via its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// private field and set it with NewConstructorGuard inside the constructor.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    orderNumber string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orderNumber string) (CreateOrderCommand, error) {
//	    if orderNumber == "" {
//	        return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderNumber")
//	    }
//	    return CreateOrderCommand{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built via its constructor.
// A zero-value guard returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
