package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=driver.go -destination=mock_driver.go -package=handlers

// DriverManager defines the driver operations used by the handlers.
type DriverManager interface {
	List(ctx context.Context, caller *models.Caller, filter models.DriverFilter) ([]models.Driver, error)
	AdminList(ctx context.Context, caller *models.Caller, filter models.DriverFilter) ([]models.Driver, error)
	Get(ctx context.Context, caller *models.Caller, id int64) (*models.DriverDetail, error)
	Create(ctx context.Context, caller *models.Caller, form forms.DriverCreationForm) (*models.Driver, error)
	UpdateLicense(ctx context.Context, caller *models.Caller, id int64, form forms.DriverLicenseUpdateForm) error
	Delete(ctx context.Context, caller *models.Caller, id int64) error
}

// DriverListResponse is the driver list page
// swagger:model DriverListResponse
type DriverListResponse struct {
	DriverList []models.Driver `json:"driver_list"`
	SearchForm SearchForm      `json:"search_form"`
}

// DriverDetailResponse is the driver detail page
// swagger:model DriverDetailResponse
type DriverDetailResponse struct {
	Driver *models.DriverDetail `json:"driver"`
	Form   *FormView            `json:"form,omitempty"`
}

// NewDriverListHandler returns an HTTP handler listing drivers.
// @Summary List drivers
// @Description Drivers ordered by username, filtered by a case-insensitive substring of the username
// @Tags drivers
// @Produce json
// @Param username query string false "Username contains"
// @Success 200 {object} handlers.DriverListResponse
// @Failure 302 "Redirect to login"
// @Router /drivers/ [get]
func NewDriverListHandler(svc DriverManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")

		list, err := svc.List(r.Context(), middlewares.CallerFromContext(r.Context()), models.DriverFilter{Username: username})
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		rnd.Render(w, http.StatusOK, DriverListResponse{
			DriverList: list,
			SearchForm: SearchForm{"username": username},
		})
	}
}

// NewDriverDetailHandler returns an HTTP handler showing a driver with the
// cars assigned to them. fields, when set, is rendered as the page's form.
func NewDriverDetailHandler(svc DriverManager, rnd Renderer, fields []forms.Field) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		driver, err := svc.Get(r.Context(), middlewares.CallerFromContext(r.Context()), id)
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		resp := DriverDetailResponse{Driver: driver}
		if fields != nil {
			resp.Form = &FormView{Fields: fields}
		}
		rnd.Render(w, http.StatusOK, resp)
	}
}

// NewDriverCreateHandler returns an HTTP handler registering a driver and
// redirecting to their detail page.
// @Summary Create driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param driver body forms.DriverCreationForm true "Driver"
// @Success 302 "Redirect to the new driver"
// @Failure 400 {object} handlers.FormView "Validation errors"
// @Router /drivers/create/ [post]
func NewDriverCreateHandler(svc DriverManager, rnd Renderer, redirect func(*models.Driver) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.DriverCreationForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		driver, err := svc.Create(r.Context(), middlewares.CallerFromContext(r.Context()), form)
		if err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, redirect(driver), http.StatusFound)
	}
}

// NewDriverLicenseUpdateHandler returns an HTTP handler changing a driver's
// license number.
// @Summary Update driver license
// @Tags drivers
// @Accept json
// @Produce json
// @Param id path int true "Driver id"
// @Param license body forms.DriverLicenseUpdateForm true "License"
// @Success 302 "Redirect"
// @Failure 400 {object} handlers.FormView "Validation errors"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /drivers/{id}/update/ [post]
func NewDriverLicenseUpdateHandler(svc DriverManager, rnd Renderer, redirect func(id int64) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		var form forms.DriverLicenseUpdateForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		if err := svc.UpdateLicense(r.Context(), middlewares.CallerFromContext(r.Context()), id, form); err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, redirect(id), http.StatusFound)
	}
}

func NewDriverDeleteHandler(svc DriverManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.CallerFromContext(r.Context()), id); err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}
		http.Redirect(w, r, models.DriverListURL, http.StatusFound)
	}
}
