package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLicenseNumber(t *testing.T) {
	tests := []struct {
		name    string
		license string
		wantErr error
	}{
		{"valid", "ASW23141", nil},
		{"more than 8", "ASW231412", ErrLicenseNumberLength},
		{"less than 8", "ASW2314", ErrLicenseNumberLength},
		{"empty", "", ErrLicenseNumberLength},
		{"first lowercase", "qAS23141", ErrLicenseNumberLetters},
		{"digit in letters", "A1W23141", ErrLicenseNumberLetters},
		{"last not numbers", "ASW23as1", ErrLicenseNumberDigits},
		{"non ascii letters", "ÄSW2314", ErrLicenseNumberLetters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateLicenseNumber(tt.license))
		})
	}
}
