package forms

import "errors"

const licenseNumberLength = 8

// License number validation errors.
var (
	ErrLicenseNumberLength  = errors.New("License number should consist of 8 characters")
	ErrLicenseNumberLetters = errors.New("First 3 characters should be uppercase letters")
	ErrLicenseNumberDigits  = errors.New("Last 5 characters should be digits")
)

// ValidateLicenseNumber accepts exactly three uppercase ASCII letters
// followed by five ASCII digits.
func ValidateLicenseNumber(licenseNumber string) error {
	if len(licenseNumber) != licenseNumberLength {
		return ErrLicenseNumberLength
	}
	for i := 0; i < 3; i++ {
		if c := licenseNumber[i]; c < 'A' || c > 'Z' {
			return ErrLicenseNumberLetters
		}
	}
	for i := 3; i < licenseNumberLength; i++ {
		if c := licenseNumber[i]; c < '0' || c > '9' {
			return ErrLicenseNumberDigits
		}
	}
	return nil
}
