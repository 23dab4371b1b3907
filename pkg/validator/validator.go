package validator

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

type CustomValidator struct {
	validator *validator.Validate
	decoder   *schema.Decoder
}

func NewValidator() *CustomValidator {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &CustomValidator{
		validator: validator.New(),
		decoder:   decoder,
	}
}

// DecodeForm parses the request form into dst using its `schema` tags
func (cv *CustomValidator) DecodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return cv.decoder.Decode(dst, r.PostForm)
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			case "datetime":
				errors[field] = field + " must match " + e.Param()
			case "uuid":
				errors[field] = field + " must be a valid id"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// Summary joins the formatted errors into one line, sorted by field
func (cv *CustomValidator) Summary(err error) string {
	formatted := cv.FormatValidationErrors(err)
	if len(formatted) == 0 {
		return err.Error()
	}

	messages := make([]string, 0, len(formatted))
	for _, message := range formatted {
		messages = append(messages, message)
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}
