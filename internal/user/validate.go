package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var fieldErrors = map[string]error{
	"Email":           ErrInvalidEmail,
	"Password":        ErrPasswordRequired,
	"ConfirmPassword": ErrPasswordMismatch,
	"Username":        ErrUsernameRequired,
	"Phone":           ErrInvalidPhone,
}

// Validate checks the form before it is sent and reports the first bad field.
func (in RegisterInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if mapped, ok := fieldErrors[verrs[0].StructField()]; ok {
			return mapped
		}
	}
	return err
}
