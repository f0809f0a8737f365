package form

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"reflect"
	"strings"
	"time"
	"unicode"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

var validate = newValidator()

// Validator returns the validator shared by forms and request binding. It
// reports fields by their json names and knows the "clock" (HH:MM) tag.
func Validator() *validator.Validate {
	return validate
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(f.Tag.Get(key), ",")
			switch name {
			case "":
				continue
			case "-":
				return ""
			}
			return name
		}
		return ""
	})

	if err := v.RegisterValidation("clock", isClock); err != nil {
		panic(err)
	}
	return v
}

func isClock(fl validator.FieldLevel) bool {
	_, err := time.Parse(ClockLayout, fl.Field().String())
	return err == nil
}

// Struct validates a bound request with the generic per-field messages.
func Struct(s any) error {
	return check(s, nil).Err()
}

// check runs the struct rules and translates failures through messages, keyed
// by "<field>.<tag>". Nested fields are reported by their full path, e.g.
// "conditions[1].operator".
func check(s any, messages map[string]string) FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(s); !errors.As(err, &verrs) {
		return errs
	}

	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())

		name, _, _ := strings.Cut(fe.Field(), "[")
		msg, ok := messages[name+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", name)
		}
		errs.Add(field, msg)
	}
	return errs
}

// fieldPath drops the root type and the names of embedded structs, which are
// the only segments that keep their Go name.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")[1:]
	parts = lo.Filter(parts, func(p string, _ int) bool {
		return p != "" && !unicode.IsUpper(rune(p[0]))
	})
	return strings.Join(parts, ".")
}

var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDateTime accepts datetime-local values, interpreted in loc, and RFC3339
// timestamps.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, value)
}
