package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/sbilibin2017/taxi-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// DriverCreationForm is submitted to register a new driver.
type DriverCreationForm struct {
	Username      string `json:"username" validate:"required,max=150,username"`
	Password1     string `json:"password1" validate:"required"`
	Password2     string `json:"password2" validate:"required,eqfield=Password1"`
	FirstName     string `json:"first_name" validate:"max=150"`
	LastName      string `json:"last_name" validate:"max=150"`
	LicenseNumber string `json:"license_number" validate:"required,license"`
}

// Fields lists the inputs of the creation form.
func (DriverCreationForm) Fields() []Field {
	return []Field{
		{Name: "username", Label: "Username", Type: "text", Required: true},
		{Name: "password1", Label: "Password", Type: "password", Required: true},
		{Name: "password2", Label: "Password confirmation", Type: "password", Required: true},
		{Name: "first_name", Label: "First name", Type: "text"},
		{Name: "last_name", Label: "Last name", Type: "text"},
		{Name: "license_number", Label: "License number", Type: "text", Required: true},
	}
}

// Validate checks every field and returns the driver to persist with its
// password already hashed.
func (f DriverCreationForm) Validate() (*models.Driver, error) {
	f.Username = strings.TrimSpace(f.Username)

	errs := check(f)
	if !errs.Has("password1") && !errs.Has("password2") {
		validatePassword(errs, "password2", f.Password1, f.Username)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &models.Driver{
		Identity: models.Identity{
			Username:     f.Username,
			PasswordHash: string(hash),
		},
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		LicenseNumber: f.LicenseNumber,
	}, nil
}

func validatePassword(errs models.ValidationErrors, field, password, username string) {
	if len([]rune(password)) < minPasswordLength {
		errs.Add(field, fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		errs.Add(field, "This password is entirely numeric.")
	}
	if username != "" && strings.EqualFold(password, username) {
		errs.Add(field, "The password is too similar to the username.")
	}
}

// DriverLicenseUpdateForm changes only the license number of a driver.
type DriverLicenseUpdateForm struct {
	LicenseNumber string `json:"license_number" validate:"required,license"`
}

// Fields lists the inputs of the license update form.
func (DriverLicenseUpdateForm) Fields() []Field {
	return []Field{
		{Name: "license_number", Label: "License number", Type: "text", Required: true},
	}
}

// Validate returns the cleaned license number.
func (f DriverLicenseUpdateForm) Validate() (string, error) {
	if err := check(f).Err(); err != nil {
		return "", err
	}
	return f.LicenseNumber, nil
}
