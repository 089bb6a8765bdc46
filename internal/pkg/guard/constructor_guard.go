// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero values. Embed one as a private field and set it with
// NewConstructorGuard inside the constructor; Validate then fails for any
// instance that was created by direct struct initialization.
//
// Example:
//
//	type ReviewResponseCommand struct {
//	    responseID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewReviewResponseCommand(id kernel.UUID) (ReviewResponseCommand, error) {
//	    // ... validation ...
//	    return ReviewResponseCommand{responseID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReviewResponseCommand) Validate() error {
//	    return c.guard.Validate(ErrReviewResponseCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value instances it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
