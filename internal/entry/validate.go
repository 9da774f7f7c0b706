package entry

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}

		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(Date); ok {
			return d.Time
		}

		return nil
	}, Date{})

	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("entrytype", func(fl validator.FieldLevel) bool {
		return Type(fl.Field().String()).Valid()
	})

	return v
}

// Validate checks f against the entry invariants: known type, non-blank
// description, positive amount and a set date.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "entry", Reason: err.Error()}
	}

	fe := fieldErrs[0]

	return &ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: reasonFor(fe.Tag()),
	}
}

func reasonFor(tag string) string {
	switch tag {
	case "nonblank", "required":
		return "is required"
	case "gt":
		return "must be positive"
	case "entrytype":
		return "must be income or expense"
	}

	return "is invalid"
}
