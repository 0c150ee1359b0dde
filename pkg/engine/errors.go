package engine

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-readmegen/pkg/template"
)

// ErrMissingUsername is wrapped by section compilers that need a GitHub
// username and find neither a config override nor a profile value.
var ErrMissingUsername = errors.New("engine: github username required")

// ValidationError reports a template-level problem found before any section
// is compiled. Validation failures abort the render outright.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("engine: invalid template: %s: %s", e.Field, e.Reason)
}

// SectionError reports a single section's compilation failure. Under
// ContinueOnError the failing section is dropped from the output and the
// error recorded; the render itself still succeeds.
type SectionError struct {
	SectionID   string
	SectionType template.SectionType
	Err         error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("engine: section %q (%s): %v", e.SectionID, e.SectionType, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}
