package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulaj69/itp-final-project-sub000/models"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		valid     bool
		badFields []string
	}{
		{
			name:     "valid input",
			userName: "Nimal Perera",
			email:    "nimal@example.com",
			password: "spicerack1",
			valid:    true,
		},
		{
			name:      "digits in name",
			userName:  "Nimal123",
			email:     "nimal@example.com",
			password:  "spicerack1",
			badFields: []string{"name"},
		},
		{
			name:      "bad email",
			userName:  "Nimal Perera",
			email:     "not-an-email",
			password:  "spicerack1",
			badFields: []string{"email"},
		},
		{
			name:      "short password",
			userName:  "Nimal Perera",
			email:     "nimal@example.com",
			password:  "abc1",
			badFields: []string{"password"},
		},
		{
			name:      "password without digit",
			userName:  "Nimal Perera",
			email:     "nimal@example.com",
			password:  "spicerackx",
			badFields: []string{"password"},
		},
		{
			name:      "everything wrong",
			userName:  "",
			email:     "",
			password:  "",
			badFields: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vr := ValidateRegistration(tt.userName, tt.email, tt.password)
			assert.Equal(t, tt.valid, vr.Valid())
			for _, field := range tt.badFields {
				assert.Contains(t, vr.Errors, field)
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	valid := ValidateProduct(models.Product{Name: "Black Pepper", Price: 12.5, Stock: 40})
	assert.True(t, valid.Valid())

	negativePrice := ValidateProduct(models.Product{Name: "Black Pepper", Price: -1, Stock: 40})
	assert.False(t, negativePrice.Valid())
	assert.Contains(t, negativePrice.Errors, "price")

	negativeStock := ValidateProduct(models.Product{Name: "Black Pepper", Price: 12.5, Stock: -3})
	assert.False(t, negativeStock.Valid())
	assert.Contains(t, negativeStock.Errors, "stock")

	unnamed := ValidateProduct(models.Product{Price: 12.5})
	assert.False(t, unnamed.Valid())
	assert.Contains(t, unnamed.Errors, "name")
}

func TestValidateAddress(t *testing.T) {
	valid := ValidateAddress(models.Address{Street: "12 Spice Lane", City: "Colombo", ZipCode: "00100"})
	assert.True(t, valid.Valid())

	missing := ValidateAddress(models.Address{})
	assert.False(t, missing.Valid())
	assert.Contains(t, missing.Errors, "street")
	assert.Contains(t, missing.Errors, "city")
	assert.Contains(t, missing.Errors, "zipcode")
}

func TestValidateFeedback(t *testing.T) {
	assert.True(t, ValidateFeedback(models.Feedback{Rating: 3}).Valid())
	assert.False(t, ValidateFeedback(models.Feedback{Rating: 0}).Valid())
	assert.False(t, ValidateFeedback(models.Feedback{Rating: 6}).Valid())
}
