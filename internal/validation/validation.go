package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"fraud_awareness/internal/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules and json-tag field naming on gin's
// binding engine. Call once at startup, before the router handles traffic.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not *validator.Validate")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v.RegisterValidation("containsdigit", containsDigit)
}

func containsDigit(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// FromBindingError converts a gin binding failure into a validation error
// carrying every failed field, not just the first.
func FromBindingError(err error) *apperror.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Malformed JSON, wrong types, empty body
		return apperror.Validation("Invalid request body")
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperror.Validation("Validation failed", fields...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "username":
		return "Username must be at least 3 characters long"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email"
	case "password":
		switch fe.Tag() {
		case "required":
			return "Password is required"
		case "containsdigit":
			return "Password must contain at least one number"
		default:
			return "Password must be at least 6 characters long"
		}
	case "title":
		return "Title must be between 5 and 200 characters"
	case "description":
		return "Description must be at least 20 characters long"
	case "fraudType":
		if fe.Tag() == "required" {
			return "Fraud type is required"
		}
		return "Invalid fraud type"
	case "evidenceUrls":
		return "Evidence URLs must be an array"
	case "location":
		return "Location cannot be empty if provided"
	case "status":
		if fe.Tag() == "required" {
			return "Status is required"
		}
		return "Invalid status"
	case "adminNotes":
		return "Admin notes must be at least 10 characters long if provided"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
