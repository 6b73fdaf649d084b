package http

import (
	"fmt"
	"regexp"
	"strings"

	"bookcatalog/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("price", validatePrice)
}

// validatePrice accepts a non-negative decimal with at most two
// fraction digits, matching the numeric(12,2) column.
func validatePrice(fl validator.FieldLevel) bool {
	return priceRe.MatchString(fl.Field().String())
}

func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "price":
			message = fmt.Sprintf("%s must be a decimal with at most two fraction digits", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
