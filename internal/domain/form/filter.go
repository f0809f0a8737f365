package form

import (
	"github.com/samber/lo"
	"strings"
)

type Condition struct {
	Field    string `json:"field" validate:"oneof=sender subject body received_at"`
	Operator string `json:"operator" validate:"oneof=contains not_contains equals starts_with ends_with"`
	Value    string `json:"value"`
}

// FilterForm is a smart email filter rule.
type FilterForm struct {
	Name       string      `json:"name"`
	Conditions []Condition `json:"conditions" validate:"dive"`
	Actions    []string    `json:"actions" validate:"dive,oneof=categorize mark_read star"`
	Category   string      `json:"category" validate:"omitempty,oneof=work personal newsletter social important"`
	Priority   string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	Enabled    bool        `json:"enabled"`
}

var filterMessages = map[string]string{
	"field.oneof":    "Please select a valid field",
	"operator.oneof": "Please select a valid operator",
	"actions.oneof":  "Please select a valid action",
	"category.oneof": "Please select a valid category",
	"priority.oneof": "Please select a valid priority",
}

func (f FilterForm) Normalize() FilterForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Conditions = lo.Map(f.Conditions, func(c Condition, _ int) Condition {
		c.Value = strings.TrimSpace(c.Value)
		return c
	})
	f.Actions = lo.Uniq(f.Actions)
	return f
}

func (f FilterForm) Validate() error {
	f = f.Normalize()

	if f.Name == "" || len(f.Conditions) == 0 {
		errs := FieldErrors{}
		errs.Add(FormField, "Please fill in all required fields")
		return errs.Err()
	}

	return check(f, filterMessages).Err()
}
