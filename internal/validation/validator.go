// Package validation declares the complete constraint set for a user
// record and turns violations into a field -> message map suitable for
// display next to form fields.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"enrollform/internal/models"
)

// FieldErrors maps a field name (json tag, nested entries as
// "academicBackground[0].university") to a human-readable message.
// It implements error so services can return it through an error value.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with the rule set for user
// records. Validation is pure and synchronous: it never touches the
// store, so email uniqueness is checked elsewhere.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with all custom rules registered. It panics if
// a rule fails to register, since that is a startup-time programming
// error.
func New() *Validator {
	v := validator.New()

	// Report field names from json tags so messages match what the
	// calling surface displays, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerRules(v)
	v.RegisterStructValidation(validateUserStruct, models.User{})

	return &Validator{validate: v}
}

// ValidateUser checks u against the full schema. It returns nil when the
// record is valid, otherwise a non-empty FieldErrors with every violated
// field reported. When several rules fail on one field, the first
// violation in rule order wins.
func (v *Validator) ValidateUser(u models.User) FieldErrors {
	err := v.validate.Struct(u)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a rule violation (reflection-level misuse); surface it
		// on a synthetic field rather than dropping it.
		return FieldErrors{"_": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		if _, reported := out[field]; reported {
			continue
		}
		out[field] = messageFor(fe)
	}
	return out
}

// fieldName strips the root struct from the namespace, leaving keys like
// "password" or "academicBackground[1].degree".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("select at least %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "strongpassword":
		return "must contain an upper-case letter, a lower-case letter and a digit"
	case "notfuture":
		return "date cannot be in the future"
	case "adult":
		return "you must be at least 18 years old"
	case "gender":
		return "select a gender"
	case "state":
		return "select a state"
	case "techarea":
		return "unknown tech area"
	case "degree":
		return "unknown academic degree"
	case "accepted":
		return "you must accept the terms"
	default:
		return fmt.Sprintf("invalid value (rule %q)", fe.Tag())
	}
}

// validateUserStruct covers the one constraint field tags cannot
// express: the state must be a filled-in, known labeled choice.
func validateUserStruct(sl validator.StructLevel) {
	u := sl.Current().Interface().(models.User)

	if !u.State.Filled() {
		sl.ReportError(u.State, "state", "State", "state", "")
		return
	}
	if known, ok := models.StateByCode(u.State.Code); !ok || known.Label != u.State.Label {
		sl.ReportError(u.State, "state", "State", "state", "")
	}
}
