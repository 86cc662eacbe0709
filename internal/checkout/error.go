package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("User not authenticated")
)

// FieldError names the first form field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
