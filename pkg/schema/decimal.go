package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal is a document-level decimal value. The document encoding follows
// the YANG decimal64 convention of quoting decimals as strings, but plenty
// of real-world documents carry plain JSON numbers instead, so both are
// accepted on input. Output is always the quoted form.
type Decimal float64

// Float64 returns the decimal as a plain float64.
func (d Decimal) Float64() float64 {
	return float64(d)
}

// MarshalJSON encodes the decimal as a quoted string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatFloat(float64(d), 'f', -1, 64))), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare number.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("decimal: %w", err)
		}
		s = unquoted
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("decimal: cannot parse %q", s)
	}
	*d = Decimal(v)
	return nil
}

// DecimalOf returns a pointer to a Decimal with the given value.
func DecimalOf(v float64) *Decimal {
	d := Decimal(v)
	return &d
}

// FloatOrNil converts an optional decimal to an optional float.
func FloatOrNil(d *Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := float64(*d)
	return &v
}

// FloatOrDefault converts an optional decimal to a float, substituting a
// default when the field is absent.
func FloatOrDefault(d *Decimal, def float64) float64 {
	if d == nil {
		return def
	}
	return float64(*d)
}

// Presence marks a YANG presence container: its meaning is carried by its
// existence, not by any content.
type Presence struct{}

// EmptyLeaf is a leaf of type "empty", encoded as [null] per RFC 7951.
type EmptyLeaf struct{}

// MarshalJSON encodes the empty leaf as [null].
func (EmptyLeaf) MarshalJSON() ([]byte, error) {
	return []byte("[null]"), nil
}

// UnmarshalJSON accepts any encoding; only presence matters.
func (*EmptyLeaf) UnmarshalJSON([]byte) error {
	return nil
}
