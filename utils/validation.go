// utils/validation.go
package utils

import (
	"fmt"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a submitted field name to its violation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// ValidationErrors converts binding failures into per-field messages
// keyed by the snake_case field name the form submitted.
func ValidationErrors(verrs validator.ValidationErrors) FieldErrors {
	errs := FieldErrors{}
	for _, fe := range verrs {
		field := SnakeCase(fe.Field())
		errs.Add(field, messageFor(field, fe))
	}
	return errs
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// SnakeCase converts a Go struct field name to its snake_case form,
// keeping acronym runs together (CustomerCategoryID -> customer_category_id).
func SnakeCase(name string) string {
	runes := []rune(name)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// ParseDate accepts the date format the forms submit, falling back to a
// full timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
