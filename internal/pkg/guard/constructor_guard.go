// Package guard provides the ConstructorGuard helper used to enforce that
// value objects, entities, commands and queries are created only through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate() when a nil error is passed as the validation
// error. This ensures that validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures objects
// are only created through their designated constructor functions. It
// prevents direct struct initialization and enforces validation rules.
//
// The guard works by maintaining an internal flag that is only set to true
// when the object is created through the proper constructor function. Any
// attempt to use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a properly constructed guard.
// Objects embedding the returned guard will pass Validate.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
