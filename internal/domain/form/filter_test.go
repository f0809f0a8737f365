package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterForm_Validate(t *testing.T) {
	valid := FilterForm{
		Name:       "Work mail",
		Conditions: []Condition{{Field: "sender", Operator: "contains", Value: "@company.com"}},
		Actions:    []string{"categorize"},
		Category:   "work",
		Priority:   "high",
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = "  "
	assert.Equal(t,
		FieldErrors{FormField: "Please fill in all required fields"},
		fieldErrors(t, missingName.Validate()),
	)

	noConditions := valid
	noConditions.Conditions = nil
	assert.Equal(t,
		FieldErrors{FormField: "Please fill in all required fields"},
		fieldErrors(t, noConditions.Validate()),
	)

	badOperator := valid
	badOperator.Conditions = []Condition{
		{Field: "sender", Operator: "contains"},
		{Field: "subject", Operator: "matches"},
	}
	badOperator.Actions = []string{"delete"}
	errs := fieldErrors(t, badOperator.Validate())
	assert.Equal(t, "Please select a valid operator", errs["conditions[1].operator"])
	assert.Equal(t, "Please select a valid action", errs["actions[0]"])
}

func TestFilterForm_NormalizeDedupesActions(t *testing.T) {
	f := FilterForm{Actions: []string{"star", "star", "mark_read"}}.Normalize()
	assert.Equal(t, []string{"star", "mark_read"}, f.Actions)
}
