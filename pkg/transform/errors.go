package transform

import "fmt"

// ConfigError reports a required top-level document section that is
// absent, or a malformed equipment library handed to the serializer.
type ConfigError struct {
	Section string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: missing %s", e.Section)
}

// UnrecognizedModelError reports an amplifier entry that matched none of
// the known noise-figure model sub-structures, or more than one. Schema
// validation enforces the one-of choice upstream, so hitting this is a
// logic error rather than bad user input.
type UnrecognizedModelError struct {
	TypeVariety string
	Matched     int
}

// Error implements the error interface.
func (e *UnrecognizedModelError) Error() string {
	return fmt.Sprintf("amplifier %q: %d noise-figure model sub-structures present, want exactly 1",
		e.TypeVariety, e.Matched)
}

// StructuralError reports a topology element that violates the graph's
// structural invariants.
type StructuralError struct {
	Kind   string // "node", "link" or "edge"
	ID     string // offending identifier(s)
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("topology %s %q: %s", e.Kind, e.ID, e.Reason)
}
