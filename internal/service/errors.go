package service

import "errors"

// Error taxonomy for ledger operations. Handlers map these to HTTP statuses
// with errors.Is; none of them is fatal to the process.
var (
	// ErrInvalidInput covers malformed user input: a non-numeric or
	// non-positive price or amount, an empty item name, an unknown theme.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStudentNotFound means the NIS does not resolve to a registry entry.
	// The view layer is expected to validate NIS existence before invoking a
	// mutation, so hitting this from a mutation is logged loudly.
	ErrStudentNotFound = errors.New("student not found")

	// ErrInsufficientBalance means the purchase price exceeds the student's
	// balance. The balance is never allowed to go negative.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
