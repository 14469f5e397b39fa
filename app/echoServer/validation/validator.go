package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

// New returns the echo.Validator used by c.Validate.
func New() *Validator {
	return &Validator{v: NewValidate()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// NewValidate reports field names by their form tag.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Messages turns a validation failure on dto into user facing messages,
// taken from each failing field's msg tag.
func Messages(err error, dto any) []string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	t := reflect.TypeOf(dto)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make([]string, 0, len(ves))
	seen := map[string]bool{}
	for _, fe := range ves {
		msg := fe.Error()
		if t != nil && t.Kind() == reflect.Struct {
			if f, ok := t.FieldByName(fe.StructField()); ok {
				if m := f.Tag.Get("msg"); m != "" {
					msg = m
				}
			}
		}
		if seen[msg] {
			continue
		}
		seen[msg] = true
		out = append(out, msg)
	}
	return out
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Sanitize trims s and HTML-escapes it for storage.
func Sanitize(s string) string {
	return escaper.Replace(strings.TrimSpace(s))
}

// NormalizeIDs turns a submitted multi-value field into an ordered list of
// distinct non-empty values. Absent input yields an empty slice.
func NormalizeIDs(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
