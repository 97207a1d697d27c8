package brief

import (
	"fmt"
	"strings"
)

// MissingRequiredMessage is shown when the name or features are left blank.
const MissingRequiredMessage = "Please provide at least a Product Name and Key Features to generate content."

// ValidationError collects every field problem found in a Brief.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if _, ok := e.Fields["product_name"]; ok {
		return MissingRequiredMessage
	}
	if _, ok := e.Fields["features"]; ok {
		return MissingRequiredMessage
	}
	parts := make([]string, 0, len(e.Fields))
	for _, k := range []string{"tone", "variants"} {
		if msg, ok := e.Fields[k]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

// Validate checks the brief before it is sent to the model. The prompt
// builder itself accepts anything; this is the caller's gate.
func (b Brief) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(b.ProductName) == "" {
		fields["product_name"] = "product name is required"
	}
	if strings.TrimSpace(b.Features) == "" {
		fields["features"] = "key features are required"
	}
	if b.Tone != "" && !b.Tone.Valid() {
		fields["tone"] = fmt.Sprintf("unknown tone of voice %q", b.Tone)
	}
	if b.Variants != 0 && (b.Variants < MinVariants || b.Variants > MaxVariants) {
		fields["variants"] = fmt.Sprintf("number of descriptions must be between %d and %d", MinVariants, MaxVariants)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
