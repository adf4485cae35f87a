package backup

import (
	"encoding/json"
	"fmt"

	"github.com/homedash/homedash/internal/model"
)

// FieldResult records the validation outcome for one recognized field of an
// imported document. Imports are lenient by design — an invalid field is
// skipped, not fatal — but the outcomes stay inspectable so the caller can
// tell the user what was and wasn't restored.
type FieldResult struct {
	// Field is the top-level JSON field name.
	Field string

	// Valid reports whether the field was well-formed and applied.
	Valid bool

	// Reason explains a rejection. Empty when Valid.
	Reason string
}

// archiveFields holds the decoded values of the fields that passed
// validation. Nil pointers mean the field was absent or invalid.
type archiveFields struct {
	Shortcuts *[]model.Shortcut
	Profile   *model.Profile
	FocusMode *bool
}

// rawArchive defers per-field decoding so one malformed field cannot abort
// the whole import.
type rawArchive struct {
	Shortcuts json.RawMessage `json:"shortcuts"`
	Profile   json.RawMessage `json:"profile"`
	FocusMode json.RawMessage `json:"focusMode"`
}

// validateArchive parses an exported document and validates each recognized
// field independently. It returns an error only when the document itself is
// unparseable or its root is not an object; field-level mismatches are
// reported through FieldResults instead.
func validateArchive(data []byte) (archiveFields, []FieldResult, error) {
	// Reject non-object roots explicitly: json.Unmarshal into a struct
	// accepts "null", which would silently restore nothing.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil || probe == nil {
		return archiveFields{}, nil, fmt.Errorf("backup document is not a JSON object: %w", err)
	}

	var raw rawArchive
	if err := json.Unmarshal(data, &raw); err != nil {
		return archiveFields{}, nil, fmt.Errorf("failed to parse backup document: %w", err)
	}

	var fields archiveFields
	var results []FieldResult

	if raw.Shortcuts != nil {
		var shortcuts []model.Shortcut
		if err := json.Unmarshal(raw.Shortcuts, &shortcuts); err != nil || shortcuts == nil {
			results = append(results, FieldResult{
				Field:  "shortcuts",
				Reason: "not an array of shortcuts",
			})
		} else {
			fields.Shortcuts = &shortcuts
			results = append(results, FieldResult{Field: "shortcuts", Valid: true})
		}
	}

	if raw.Profile != nil {
		var profile model.Profile
		if err := json.Unmarshal(raw.Profile, &profile); err != nil || string(raw.Profile) == "null" {
			results = append(results, FieldResult{
				Field:  "profile",
				Reason: "not a profile object",
			})
		} else {
			fields.Profile = &profile
			results = append(results, FieldResult{Field: "profile", Valid: true})
		}
	}

	if raw.FocusMode != nil {
		var focus bool
		if err := json.Unmarshal(raw.FocusMode, &focus); err != nil || string(raw.FocusMode) == "null" {
			results = append(results, FieldResult{
				Field:  "focusMode",
				Reason: "not a boolean",
			})
		} else {
			fields.FocusMode = &focus
			results = append(results, FieldResult{Field: "focusMode", Valid: true})
		}
	}

	return fields, results, nil
}
