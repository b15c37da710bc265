package equipment

import (
	"errors"
	"fmt"
)

// Sentinel errors for equipment library lookups.
var (
	ErrUnknownType   = errors.New("unknown equipment type")
	ErrLengthsDiffer = errors.New("sequence lengths differ")
)

// UnresolvedReferenceError reports a composite amplifier naming a stage
// type that is not present in the amplifier table.
type UnresolvedReferenceError struct {
	Composite string // the composite amplifier type
	Stage     string // "preamp" or "booster"
	Missing   string // the name that failed to resolve
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("composite amplifier %q: %s type %q not found in the amplifier table",
		e.Composite, e.Stage, e.Missing)
}

// Is matches ErrUnknownType so callers can test with errors.Is.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnknownType
}
