package handlers

import (
	"net/http"

	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

// AdminDriverColumns are the change list columns of the driver admin.
var AdminDriverColumns = []string{"username", "is_staff", "first_name", "last_name", "license_number"}

// AdminDriverRow is one line of the driver change list.
type AdminDriverRow struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	IsStaff       bool   `json:"is_staff"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LicenseNumber string `json:"license_number"`
	ChangeURL     string `json:"change_url"`
}

// AdminDriverListResponse is the driver change list
// swagger:model AdminDriverListResponse
type AdminDriverListResponse struct {
	Columns []string         `json:"columns"`
	Results []AdminDriverRow `json:"results"`
}

// NewAdminDriverListHandler returns an HTTP handler for the staff driver
// change list, searchable by ?q= over the username.
// @Summary Driver admin change list
// @Tags admin
// @Produce json
// @Param q query string false "Username contains"
// @Success 200 {object} handlers.AdminDriverListResponse
// @Failure 403 "Staff only"
// @Router /admin/taxi/driver/ [get]
func NewAdminDriverListHandler(svc DriverManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := svc.AdminList(r.Context(), middlewares.CallerFromContext(r.Context()), models.DriverFilter{
			Username: r.URL.Query().Get("q"),
		})
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		rows := make([]AdminDriverRow, 0, len(drivers))
		for _, d := range drivers {
			rows = append(rows, AdminDriverRow{
				ID:            d.ID,
				Username:      d.Username,
				IsStaff:       d.IsStaff,
				FirstName:     d.FirstName,
				LastName:      d.LastName,
				LicenseNumber: d.LicenseNumber,
				ChangeURL:     models.AdminDriverChangeURL(d.ID),
			})
		}

		rnd.Render(w, http.StatusOK, AdminDriverListResponse{
			Columns: AdminDriverColumns,
			Results: rows,
		})
	}
}
