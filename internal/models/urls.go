package models

import "fmt"

// Paths of the HTML-facing endpoints, shared by handlers and redirects.
const (
	IndexURL            = "/"
	LoginURL            = "/accounts/login/"
	LogoutURL           = "/accounts/logout/"
	ManufacturerListURL = "/manufacturers/"
	CarListURL          = "/cars/"
	DriverListURL       = "/drivers/"
	AdminDriverListURL  = "/admin/taxi/driver/"
)

func CarDetailURL(id int64) string {
	return fmt.Sprintf("/cars/%d/", id)
}

func DriverDetailURL(id int64) string {
	return fmt.Sprintf("/drivers/%d/", id)
}

func AdminDriverChangeURL(id int64) string {
	return fmt.Sprintf("/admin/taxi/driver/%d/change/", id)
}
