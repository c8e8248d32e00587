package serverutils

import (
	"fmt"
	"strings"

	"cinimagic-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks the request DTO's validate tags and flattens any
// violations into one ValidationError.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var issues []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		issues = append(issues, fmt.Sprintf("%s is %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}
	return &apperrors.ValidationError{Message: strings.Join(issues, ", ")}
}
