package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/validation"
)

func validData() validation.RegistrationData {
	return validation.RegistrationData{
		Login:     "mylogin",
		Name:      "Олена Коваленко",
		Email:     "olena@example.com",
		Password:  "Abcdefg1",
		Phone:     "0501234567",
		Birthdate: "1990-01-01",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidateRegistration(validData()))

	noBirthdate := validData()
	noBirthdate.Birthdate = ""
	assert.Empty(t, validation.ValidateRegistration(noBirthdate))
}

func TestValidateRegistration_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*validation.RegistrationData)
	}{
		{"short login", func(d *validation.RegistrationData) { d.Login = "abc" }},
		{"name with digits", func(d *validation.RegistrationData) { d.Name = "User123" }},
		{"email without at", func(d *validation.RegistrationData) { d.Email = "not-an-email" }},
		{"email without domain dot", func(d *validation.RegistrationData) { d.Email = "a@b" }},
		{"short password", func(d *validation.RegistrationData) { d.Password = "Ab1" }},
		{"password without uppercase", func(d *validation.RegistrationData) { d.Password = "abcdefg1" }},
		{"password without digit", func(d *validation.RegistrationData) { d.Password = "Abcdefgh" }},
		{"phone with letters", func(d *validation.RegistrationData) { d.Phone = "050abc" }},
		{"future birthdate", func(d *validation.RegistrationData) { d.Birthdate = "2999-01-01" }},
		{"unparseable birthdate", func(d *validation.RegistrationData) { d.Birthdate = "not-a-date" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data)

			errs := validation.ValidateRegistration(data)
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidateRegistration_CollectsAllErrors(t *testing.T) {
	errs := validation.ValidateRegistration(validation.RegistrationData{})
	// Every rule except the optional birthdate fails on empty input.
	assert.Len(t, errs, 5)
}
