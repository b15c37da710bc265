package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports every constraint a document violated.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "document validation failed: " + e.Problems[0]
	}
	return fmt.Sprintf("document validation failed (%d problems): %s",
		len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validator is the schema validation collaborator. Documents pass through
// it before any extraction and after serialization.
type Validator struct {
	v *validator.Validate
}

// NewValidator constructs a Validator with the photonic schema rules
// registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateAmplifierChoice, Amplifier{})
	v.RegisterStructValidation(validateLinkChoice, NetworkLink{})
	return &Validator{v: v}
}

// Validate checks the document against the schema constraints. It returns
// a *ValidationError listing every violated constraint, or nil.
func (vd *Validator) Validate(doc *Document) error {
	if doc == nil {
		return &ValidationError{Problems: []string{"document is nil"}}
	}
	err := vd.v.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Problems: []string{err.Error()}}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, formatFieldError(fe))
	}
	return &ValidationError{Problems: problems}
}

// FillDefaults fills schema-defined default values into absent optional
// fields, in place.
func (vd *Validator) FillDefaults(doc *Document) error {
	if err := defaults.Set(doc); err != nil {
		return fmt.Errorf("filling schema defaults: %w", err)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: required field is missing", fe.Namespace())
	case "unique":
		return fmt.Sprintf("%s: duplicate entries (key %s)", fe.Namespace(), fe.Param())
	case "nfmodel":
		return fmt.Sprintf("%s: exactly one noise-figure model sub-structure must be present", fe.Namespace())
	case "linkkind":
		return fmt.Sprintf("%s: a link must be either a fiber or a patch", fe.Namespace())
	default:
		return fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
}

// validateAmplifierChoice enforces the one-of choice between the
// noise-figure model sub-structures of an amplifier entry.
func validateAmplifierChoice(sl validator.StructLevel) {
	amp := sl.Current().Interface().(Amplifier)

	present := 0
	if amp.PolynomialNF != nil {
		present++
	}
	if amp.OpenROADMILA != nil {
		present++
	}
	if amp.OpenROADMPreamp != nil {
		present++
	}
	if amp.OpenROADMBooster != nil {
		present++
	}
	if amp.MinMaxNF != nil {
		present++
	}
	if amp.Composite != nil {
		present++
	}
	if amp.RamanApproximation != nil {
		present++
	}

	if present != 1 {
		sl.ReportError(amp.Type, "type", "Type", "nfmodel", "")
	}
}

// validateLinkChoice enforces the fiber/patch choice on a topology link.
func validateLinkChoice(sl validator.StructLevel) {
	link := sl.Current().Interface().(NetworkLink)
	if (link.Fiber == nil) == (link.Patch == nil) {
		sl.ReportError(link.LinkID, "link-id", "LinkID", "linkkind", "")
	}
}
