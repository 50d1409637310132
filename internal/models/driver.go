package models

import "fmt"

const (
	DriverVerboseName       = "driver"
	DriverVerboseNamePlural = "drivers"
)

// Identity holds the login credentials a driver is built on.
type Identity struct {
	Username     string `json:"username" db:"username"` // Unique login name
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash
	IsStaff      bool   `json:"is_staff" db:"is_staff"` // Grants access to the admin surface
}

// Driver represents a driver record in the database
type Driver struct {
	ID int64 `json:"id" db:"id"` // Primary key
	Identity
	FirstName     string `json:"first_name" db:"first_name"`
	LastName      string `json:"last_name" db:"last_name"`
	LicenseNumber string `json:"license_number" db:"license_number"` // Unique, AAA12345
}

// String returns "{username} ({first_name} {last_name})".
func (d Driver) String() string {
	return fmt.Sprintf("%s (%s %s)", d.Username, d.FirstName, d.LastName)
}

// AbsoluteURL returns the driver detail path.
func (d Driver) AbsoluteURL() string {
	return DriverDetailURL(d.ID)
}

// DriverDetail is a driver together with the cars assigned to it.
type DriverDetail struct {
	Driver
	Cars []CarListItem `json:"cars"`
}

// DriverFilter narrows the driver list by a case-insensitive substring of
// the username. An empty Username lists everything.
type DriverFilter struct {
	Username string
}
