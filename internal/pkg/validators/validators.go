// Package validators wraps go-playground/validator with the portal's custom tags.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)

	instance *validator.Validate
	once     sync.Once
)

// SlugValidation accepts lower-case ASCII words joined by single hyphens.
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// PhoneValidation accepts an optional leading + followed by 6-20 digits, spaces or hyphens.
func PhoneValidation(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// Get returns the shared validator with custom tags registered.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("slug", SlugValidation)
		_ = v.RegisterValidation("phone", PhoneValidation)
		instance = v
	})
	return instance
}

// ValidateStruct validates s and reports failures as an invalid_argument error listing field and tag.
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("validation failed: [%s]", strings.Join(messages, "; ")))
	}

	return apperrors.Wrap(apperrors.CodeInvalidArgument, "validation error", err)
}
