// Package guard provides a defensive programming helper that ensures value
// objects and entities are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so validation can reject objects that bypassed
// their factory.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when
// a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether its owner was created through a proper
// constructor. The guard works by maintaining an internal flag that is only
// set to true when the object is created through NewConstructorGuard; any
// zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrEmailNotConstructed = errors.New("EmailAddress must be created via NewEmailAddress")
//
//	type EmailAddress struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewEmailAddress(raw string) (EmailAddress, error) {
//	    if raw == "" {
//	        return EmailAddress{}, errors.New("email is required")
//	    }
//	    return EmailAddress{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e EmailAddress) Validate() error {
//	    return e.guard.Validate(ErrEmailNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it inside the constructor of every domain object that
// must not be usable as a zero value.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function. If the object was created as a zero
// value, the provided validationError is returned; if validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
