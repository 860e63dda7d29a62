// utils/validate.go
package utils

import (
	"regexp"
	"strings"

	"github.com/dulaj69/itp-final-project-sub000/models"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z ]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// at least 8 chars with one letter and one digit
	passwordLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRegex  = regexp.MustCompile(`[0-9]`)
)

// ValidationResult reports field-level validation errors for an input
type ValidationResult struct {
	Errors map[string]string
}

// Valid reports whether no field failed
func (vr ValidationResult) Valid() bool {
	return len(vr.Errors) == 0
}

func (vr *ValidationResult) add(field, msg string) {
	if vr.Errors == nil {
		vr.Errors = map[string]string{}
	}
	vr.Errors[field] = msg
}

// ValidateRegistration checks a registration payload before the User
// document is constructed
func ValidateRegistration(name, email, password string) ValidationResult {
	var vr ValidationResult
	if strings.TrimSpace(name) == "" || !nameRegex.MatchString(name) {
		vr.add("name", "name must contain only letters and spaces")
	}
	if !emailRegex.MatchString(email) {
		vr.add("email", "invalid email address")
	}
	if len(password) < 8 || !passwordLetterRegex.MatchString(password) || !passwordDigitRegex.MatchString(password) {
		vr.add("password", "password must be at least 8 characters with a letter and a number")
	}
	return vr
}

// ValidateProduct checks a product payload before insert/update
func ValidateProduct(p models.Product) ValidationResult {
	var vr ValidationResult
	if strings.TrimSpace(p.Name) == "" {
		vr.add("name", "name is required")
	}
	if p.Price < 0 {
		vr.add("price", "price must be zero or greater")
	}
	if p.Stock < 0 {
		vr.add("stock", "stock must be zero or greater")
	}
	return vr
}

// ValidateAddress checks a shipping address
func ValidateAddress(a models.Address) ValidationResult {
	var vr ValidationResult
	if strings.TrimSpace(a.Street) == "" {
		vr.add("street", "street is required")
	}
	if strings.TrimSpace(a.City) == "" {
		vr.add("city", "city is required")
	}
	if strings.TrimSpace(a.ZipCode) == "" {
		vr.add("zipcode", "zipcode is required")
	}
	return vr
}

// ValidateFeedback checks a feedback payload
func ValidateFeedback(f models.Feedback) ValidationResult {
	var vr ValidationResult
	if f.Rating < 1 || f.Rating > 5 {
		vr.add("rating", "rating must be between 1 and 5")
	}
	return vr
}
