package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgEmailTaken  = "The email has already been taken."
	MsgRoleInvalid = "The selected role is invalid."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate runs the declarative rules on a request struct and returns a
// field -> messages map, or nil when the input passes.
func Validate(req any) map[string][]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"request": {"The given data was invalid."}}
	}

	out := make(map[string][]string, len(verrs))

	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], ruleMessage(fe))
	}

	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " field is required."
	case "email":
		return "The " + fe.Field() + " must be a valid email address."
	case "min":
		return "The " + fe.Field() + " must be at least " + fe.Param() + " characters."
	case "max":
		return "The " + fe.Field() + " must not be greater than " + fe.Param() + " characters."
	default:
		return "The " + fe.Field() + " is invalid."
	}
}
