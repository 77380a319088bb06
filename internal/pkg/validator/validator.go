package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Role validation
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		return role == "user" || role == "admin"
	})

	// Tool identifier validation
	validate.RegisterValidation("tool", func(fl validator.FieldLevel) bool {
		tool := fl.Field().String()
		validTools := []string{
			"live_tv", "tamasha_otp", "temp_email", "youtube_download",
			"image_enhance", "phone_lookup", "eyecon_lookup",
		}
		for _, t := range validTools {
			if tool == t {
				return true
			}
		}
		return false
	})

	// Phone number: digits only after sanitization, 7-15 digits
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		digits := 0
		for _, r := range phone {
			if r >= '0' && r <= '9' {
				digits++
			} else if r != ' ' && r != '-' && r != '+' && r != '(' && r != ')' {
				return false
			}
		}
		return digits >= 7 && digits <= 15
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "role":
			errors[field] = "Invalid role. Must be: user or admin"
		case "tool":
			errors[field] = "Unknown tool identifier"
		case "phone":
			errors[field] = "Invalid phone number"
		case "oneof":
			errors[field] = "Must be one of: " + err.Param()
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
