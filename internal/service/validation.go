package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// validationError converts a validator failure into the 400 error contract.
// The message names the first offending field so clients can surface it.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s is required", fe.Field()))
		}
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}
