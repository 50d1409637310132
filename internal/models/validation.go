package models

import (
	"sort"
	"strings"
)

// NonFieldErrors is the key for errors not tied to a single field.
const NonFieldErrors = "__all__"

// ValidationErrors maps form fields to their error messages.
type ValidationErrors map[string][]string

// Add appends msg to the errors of field.
func (e ValidationErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field has at least one error.
func (e ValidationErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Err returns e as an error, or nil when there are no errors.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return strings.Join(parts, ", ")
}
