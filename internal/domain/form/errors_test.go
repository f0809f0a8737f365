package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	assert.True(t, errs.Empty())
	assert.NoError(t, errs.Err())

	errs.Add("title", "first")
	errs.Add("title", "second")
	errs.Add("end_time", "bad")

	assert.Equal(t, "first", errs["title"])
	assert.True(t, errs.Has("end_time"))
	assert.EqualError(t, errs.Err(), "invalid form: end_time: bad; title: first")
}
