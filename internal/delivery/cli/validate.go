package cli

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/linguago/linguago/internal/domain/entities"
)

// Client-side form validation. A failed validation is surfaced immediately
// as a notice and never reaches the backend.

func validateLogin(creds entities.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return errors.New(msgMissingFields)
	}
	if !strings.Contains(creds.Email, "@") {
		return errors.New(msgInvalidEmail)
	}

	return nil
}

func validateRegister(data entities.RegisterData) error {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return errors.New(msgMissingFields)
	}
	if utf8.RuneCountInString(strings.TrimSpace(data.Name)) < 2 {
		return errors.New(msgNameTooShort)
	}
	if !strings.Contains(data.Email, "@") {
		return errors.New(msgInvalidEmail)
	}
	if len(data.Password) < 8 {
		return errors.New(msgPasswordTooShort)
	}
	if data.Password != data.ConfirmPassword {
		return errors.New(msgPasswordsDontMatch)
	}

	return nil
}

func validatePasswordReset(email, newPassword string) error {
	if email == "" || newPassword == "" {
		return errors.New(msgMissingFields)
	}
	if !strings.Contains(email, "@") {
		return errors.New(msgInvalidEmail)
	}
	if len(newPassword) < 6 {
		return errors.New(msgNewPasswordTooShort)
	}

	return nil
}

func validateProfile(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return errors.New(msgNameTooShort)
	}

	return nil
}
