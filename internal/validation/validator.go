// Package validation is the registration gate: pure format checks run
// before anything touches the credential store.
package validation

import (
	"regexp"
	"time"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-zА-Яа-яЁёІіЇїЄєҐґ\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d+$`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`\d`)
)

type RegistrationData struct {
	Login     string
	Name      string
	Email     string
	Password  string
	Phone     string
	Birthdate string
}

func ValidateLogin(login string) bool {
	return len([]rune(login)) >= 5
}

func ValidateName(name string) bool {
	return nameRe.MatchString(name)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8 && upperRe.MatchString(password) && digitRe.MatchString(password)
}

func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidateBirthdate accepts an empty value; a provided date must parse
// and not lie in the future.
func ValidateBirthdate(birthdate string) bool {
	if birthdate == "" {
		return true
	}
	d, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}

// ValidateRegistration returns one message per failed rule; an empty
// slice means the data may be registered.
func ValidateRegistration(data RegistrationData) []string {
	var errs []string

	if !ValidateLogin(data.Login) {
		errs = append(errs, "login must be at least 5 characters")
	}
	if !ValidateName(data.Name) {
		errs = append(errs, "name must contain letters only")
	}
	if !ValidateEmail(data.Email) {
		errs = append(errs, "enter a valid email address")
	}
	if !ValidatePassword(data.Password) {
		errs = append(errs, "password must be at least 8 characters with an uppercase letter and a digit")
	}
	if !ValidatePhone(data.Phone) {
		errs = append(errs, "phone must contain digits only")
	}
	if !ValidateBirthdate(data.Birthdate) {
		errs = append(errs, "birthdate cannot be in the future")
	}

	return errs
}
