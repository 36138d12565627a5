package booking

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ServiceForm carries the four service fields edited on the dashboard. All
// fields are required; price is held digits-only.
type ServiceForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required"`
	Duration    string `validate:"required"`
}

// Validate checks the required fields and returns the pt-BR banner message
// shown when any of them is missing.
func (f ServiceForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errMissingFields
	}
	return nil
}

// AppointmentForm is the booking confirmation submission.
type AppointmentForm struct {
	ClientName string `validate:"required"`
	ServiceID  string `validate:"required"`
	Date       string `validate:"required"`
	Time       string `validate:"required"`
}

// Validate trims the client name and checks all fields are present. The name
// check wins so the user sees the more specific message.
func (f *AppointmentForm) Validate() error {
	f.ClientName = strings.TrimSpace(f.ClientName)
	if f.ClientName == "" {
		return errMissingName
	}
	if err := validate.Struct(f); err != nil {
		return errMissingFields
	}
	return nil
}

type formError string

func (e formError) Error() string { return string(e) }

const (
	errMissingFields formError = "Por favor, preencha todos os campos obrigatórios."
	errMissingName   formError = "Por favor, informe o nome do cliente."
)

// SanitizePrice normalizes a price input to whole-currency digits: anything
// from the decimal comma on is dropped, then every non-digit character is
// stripped. The simplification is deliberately lossy: "R$ 1.234,00" becomes
// "1234".
func SanitizePrice(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeMoney allow-lists digits, '.' and ',' for the total_value field
// surfaced when an appointment is completed.
func SanitizeMoney(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
