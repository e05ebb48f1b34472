package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// RegisterValidators adds the enum tags used in request bindings.
func RegisterValidators(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"billingstatus": func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(domain.BillingStatus)
			return ok && s.IsValid()
		},
		"projectstatus": stringEnum(func(s string) bool { return domain.ProjectStatus(s).IsValid() }),
		"txtype":        stringEnum(func(s string) bool { return domain.TransactionType(s).IsValid() }),
		"txcategory":    stringEnum(func(s string) bool { return domain.TransactionCategory(s).IsValid() }),
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func stringEnum(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return valid(field.String())
	}
}
