package models

// Permission codenames.
const (
	PermAddManufacturer = "add_manufacturer"
)

// Caller is the authenticated identity a request is made on behalf of.
type Caller struct {
	DriverID    int64
	SessionID   string
	Username    string
	IsStaff     bool
	Permissions []string
}

// HasPermission reports whether the caller holds perm. Staff hold every permission.
func (c Caller) HasPermission(perm string) bool {
	if c.IsStaff {
		return true
	}
	for _, p := range c.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
