package checkout

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the shipping and payment form a buyer submits.
type Form struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,bd_phone"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	Note           string `json:"note"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=cod bkash nagad rocket card"`
	ShippingMethod string `json:"shipping_method"`
}

// National mobile numbers: optional 88 country prefix, then 01 and an
// operator digit 3-9.
var bdPhonePattern = regexp.MustCompile(`^(?:\+88|88)?01[3-9][0-9]{8}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("bd_phone", func(fl validator.FieldLevel) bool {
		return bdPhonePattern.MatchString(fl.Field().String())
	})
	return v
}

var fieldMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"bd_phone": "must be a valid Bangladeshi mobile number",
	"oneof":    "is not an accepted value",
}

// Validate returns the first failing field, nil when the form is clean.
func (f *Form) Validate() *FieldError {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &FieldError{Field: "form", Message: "is invalid"}
	}

	first := errs[0]
	msg, ok := fieldMessages[first.Tag()]
	if !ok {
		msg = "is invalid"
	}
	return &FieldError{
		Field:   strings.ToLower(first.Field()),
		Message: msg,
	}
}
