package httperr

import "errors"

// Domain error taxonomy. Validation errors are recoverable by fixing
// the input, conflicts by retrying with another slot, state errors are
// final for the attempted transition.

type ValidationError struct {
	Code string
}

func (e ValidationError) Error() string {
	return e.Code
}

type ConflictError struct {
	Code string
}

func (e ConflictError) Error() string {
	return e.Code
}

type StateError struct {
	Code string
}

func (e StateError) Error() string {
	return e.Code
}

type NotFoundError struct {
	Code string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return ValidationError{Code: code}
}

func ErrConflict(code string) error {
	return ConflictError{Code: code}
}

func ErrState(code string) error {
	return StateError{Code: code}
}

func ErrNotFound(code string) error {
	return NotFoundError{Code: code}
}

func IsValidation(err error, code string) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return code == "" || ve.Code == code
	}
	return false
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsState(err error) bool {
	var se StateError
	return errors.As(err, &se)
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}
