package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embedding it lets
// Validate tell a constructed value apart from a zero value:
//
//	type SettleInvoiceCommand struct {
//	    invoiceID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c SettleInvoiceCommand) Validate() error {
//	    return c.guard.Validate(ErrSettleInvoiceCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
