package check

import "errors"

// Validation errors returned by mutations. All are recoverable: the
// mutation is rejected and the check is left unchanged.
var (
	ErrEmptyDescription = errors.New("item description cannot be empty")
	ErrInvalidQuantity  = errors.New("quantity must be a whole number greater than 0")
	ErrInvalidPrice     = errors.New("price must be a valid non-negative amount")
	ErrItemNotFound     = errors.New("item not found")
	ErrEmptyName        = errors.New("person name cannot be empty")
	ErrDuplicatePerson  = errors.New("person already exists")
	ErrUnknownPerson    = errors.New("person is not on this check")
	ErrLastPerson       = errors.New("cannot remove the last remaining person")
	ErrNegativeAmount   = errors.New("amount must be a valid non-negative number")
)
