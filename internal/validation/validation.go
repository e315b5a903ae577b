// Package validation wraps go-playground/validator to produce
// field-keyed, human-readable error maps for request inputs.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tyma/backend/internal/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their json tag so error maps line up with
	// the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("contact_subject", func(fl validator.FieldLevel) bool {
		return model.Subject(fl.Field().String()).Valid()
	})
	mustRegister("official_position", func(fl validator.FieldLevel) bool {
		return model.Position(fl.Field().String()).Valid()
	})
	mustRegister("official_type", func(fl validator.FieldLevel) bool {
		return model.OfficialType(fl.Field().String()).Valid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Validate checks v against its validate tags and returns a map from
// json field name to a human-readable message. Nil means v is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"non_field": "Invalid input"}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "contact_subject":
		return "Invalid subject. Valid choices are: " + joinSubjects()
	case "official_position":
		return "Invalid position. Valid choices are: CHAIRMAN, VICE_CHAIRMAN, COORDINATOR"
	case "official_type":
		return "Invalid official type. Valid choices are: BOARD, STAFF, VOLUNTEER, ADVISOR, ADMIN"
	}
	return "Invalid value"
}

func joinSubjects() string {
	subjects := model.Subjects()
	parts := make([]string, len(subjects))
	for i, s := range subjects {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// NormalizeEmail trims surrounding whitespace and lower-cases an
// email address. Applied before validation and before any lookup or
// write so that comparisons are always on the canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
