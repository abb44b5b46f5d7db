package models

import (
	"fmt"
	"strings"
)

// FieldNotLoadedError is returned when an accessor needs a top-level detail
// group that was never requested in the original API call. For example,
// asking for a payer's email address on a Transaction fetched without the
// payer field. The caller can recover by re-requesting with broader fields.
type FieldNotLoadedError struct {
	Label string
	Field string
}

func (e *FieldNotLoadedError) Error() string {
	return fmt.Sprintf("%s was not loaded with %q field", e.Label, e.Field)
}

// MissingKeyError is returned when a detail group was loaded but a sub-field
// within it is absent from the payload. PayPal omits optional values outright,
// so this means "genuinely not present", not a caller configuration problem.
type MissingKeyError struct {
	Label string
	Path  []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s has no %s", e.Label, strings.Join(e.Path, "."))
}

// APIErrorDetail is one issue entry in a PayPal error response body.
type APIErrorDetail struct {
	Field    string `json:"field,omitempty"`
	Location string `json:"location,omitempty"`
	Issue    string `json:"issue,omitempty"`
}

// APIError is a non-success response from PayPal, surfaced after the single
// authorised retry. It keeps the HTTP status alongside the parsed error body.
type APIError struct {
	StatusCode int              `json:"-"`
	Name       string           `json:"name"`
	Message    string           `json:"message"`
	DebugID    string           `json:"debug_id,omitempty"`
	Details    []APIErrorDetail `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Render()
}

// Render formats the error body the way PayPal support expects to see it
// quoted: "name: message" followed by one " — issue (in location)" clause per
// detail.
func (e *APIError) Render() string {
	parts := make([]string, 0, len(e.Details)+1)
	parts = append(parts, fmt.Sprintf("%s: %s", e.Name, e.Message))
	for _, detail := range e.Details {
		parts = append(parts, fmt.Sprintf("%s (in %s)", detail.Issue, detail.Location))
	}
	return strings.Join(parts, " — ")
}
