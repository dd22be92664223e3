package labelcodec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLengthMismatch     = errors.New("label count does not match sum of lengths")
	ErrUnknownLabel       = errors.New("unknown label")
	ErrDuplicateCharacter = errors.New("duplicate character in alphabet")
	ErrUnsupportedTensor  = errors.New("unsupported label tensor")
	ErrAlphabetMismatch   = errors.New("batch was encoded with a different alphabet")
)

// LabelError reports a label that has no character in the codec's table.
type LabelError struct {
	Label  int32 // Offending label
	Item   int   // Index of the item being decoded
	Offset int   // Position in the flat label sequence
}

// Error implements the error interface.
func (e *LabelError) Error() string {
	return fmt.Sprintf("%s %d at offset %d (item %d)", ErrUnknownLabel, e.Label, e.Offset, e.Item)
}

// Unwrap returns ErrUnknownLabel.
func (e *LabelError) Unwrap() error {
	return ErrUnknownLabel
}
