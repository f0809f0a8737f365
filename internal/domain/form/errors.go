package form

import (
	"errors"
	"fmt"
	"github.com/samber/lo"
	"slices"
	"strings"
)

var ErrInvalidForm = errors.New("invalid form")

// FormField is the key of errors that do not belong to a single field.
const FormField = "form"

// FieldErrors maps a json field name to the message shown next to it.
type FieldErrors map[string]string

// Add keeps the first message reported for a field.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func (e FieldErrors) Err() error {
	if e.Empty() {
		return nil
	}
	return &ValidationError{Fields: e}
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := lo.Keys(e.Fields)
	slices.Sort(keys)

	parts := lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %s", k, e.Fields[k])
	})
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}
