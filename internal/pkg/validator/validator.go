package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/station-microservice/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRequest валидирует запрос и возвращает base с деталями по полям
func ValidateRequest(s interface{}, base *errors.AppError) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return base.Wrap(err)
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return base.WithDetails(details).Wrap(err)
}
