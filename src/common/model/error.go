package common_model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DescriptiveError is the JSON body returned by every failing endpoint.
type DescriptiveError struct {
	Message     string   `json:"message"`
	Description string   `json:"description,omitempty"`
	Context     string   `json:"context,omitempty"`
	Fields      []string `json:"fields,omitempty"`
}

func NewApiError(message string, err error, context string) *DescriptiveError {
	e := &DescriptiveError{
		Message: message,
		Context: context,
	}
	if err != nil {
		e.Description = err.Error()
	}
	return e
}

func NewParseJsonError(err error) *DescriptiveError {
	return NewApiError("unable to parse body", err, "json")
}

// NewValidationError lists the offending fields when err comes from the validator.
func NewValidationError(err error) *DescriptiveError {
	e := NewApiError("invalid body", err, "validation")

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			e.Fields = append(e.Fields, fmt.Sprintf("%s:%s", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return e
}

func (e *DescriptiveError) Error() string {
	if e.Description == "" {
		return e.Message
	}
	return e.Message + ": " + e.Description
}

// Send returns the value to be serialized in the response.
func (e *DescriptiveError) Send() DescriptiveError {
	return *e
}
