package services

import (
	"errors"
	"fmt"
)

// Validation errors: the operation is rejected and state is left unchanged.
var (
	ErrDuplicateItem          = errors.New("an identical item already exists in the quotation")
	ErrDuplicateSection       = errors.New("a section with this name already exists")
	ErrDuplicateBusbarSection = errors.New("a busbar section with this title already exists")
	ErrInsufficientStock      = errors.New("requested quantity exceeds available stock")
)

// ErrNoMaterialSelected is returned by busbar calculation when no material
// density has been chosen. No row is computed in that case.
var ErrNoMaterialSelected = errors.New("no busbar material selected")

// ParseError reports free-text input that could not be parsed as a number.
// It is reported to the caller without mutating any stored state.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a number", e.Input)
}

func errIndexOutOfRange(index, length int) error {
	return fmt.Errorf("row index %d out of range (document has %d rows)", index, length)
}
