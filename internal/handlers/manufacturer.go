package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=manufacturer.go -destination=mock_manufacturer.go -package=handlers

// ManufacturerManager defines the manufacturer operations used by the handlers.
type ManufacturerManager interface {
	List(ctx context.Context, caller *models.Caller, filter models.ManufacturerFilter) ([]models.Manufacturer, error)
	Get(ctx context.Context, caller *models.Caller, id int64) (*models.Manufacturer, error)
	Create(ctx context.Context, caller *models.Caller, form forms.ManufacturerForm) (*models.Manufacturer, error)
	Update(ctx context.Context, caller *models.Caller, id int64, form forms.ManufacturerForm) (*models.Manufacturer, error)
	Delete(ctx context.Context, caller *models.Caller, id int64) error
}

// ManufacturerListResponse is the manufacturer list page
// swagger:model ManufacturerListResponse
type ManufacturerListResponse struct {
	ManufacturerList []models.Manufacturer `json:"manufacturer_list"`
	SearchForm       SearchForm            `json:"search_form"`
}

// ManufacturerResponse is a single manufacturer with its edit form.
type ManufacturerResponse struct {
	Manufacturer *models.Manufacturer `json:"manufacturer"`
	Form         *FormView            `json:"form,omitempty"`
}

// NewManufacturerListHandler returns an HTTP handler listing manufacturers.
// @Summary List manufacturers
// @Description Manufacturers ordered by name, filtered by a case-insensitive substring of the name
// @Tags manufacturers
// @Produce json
// @Param name query string false "Name contains"
// @Success 200 {object} handlers.ManufacturerListResponse
// @Failure 302 "Redirect to login"
// @Router /manufacturers/ [get]
func NewManufacturerListHandler(svc ManufacturerManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")

		list, err := svc.List(r.Context(), middlewares.CallerFromContext(r.Context()), models.ManufacturerFilter{Name: name})
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		rnd.Render(w, http.StatusOK, ManufacturerListResponse{
			ManufacturerList: list,
			SearchForm:       SearchForm{"name": name},
		})
	}
}

// NewManufacturerCreateHandler returns an HTTP handler creating a manufacturer.
// @Summary Create manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Param manufacturer body forms.ManufacturerForm true "Manufacturer"
// @Success 302 "Redirect to the manufacturer list"
// @Failure 400 {object} handlers.FormView "Validation errors"
// @Failure 403 {object} handlers.ErrorResponse "Missing add_manufacturer permission"
// @Router /manufacturers/create/ [post]
func NewManufacturerCreateHandler(svc ManufacturerManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.ManufacturerForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		if _, err := svc.Create(r.Context(), middlewares.CallerFromContext(r.Context()), form); err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, models.ManufacturerListURL, http.StatusFound)
	}
}

// NewManufacturerGetHandler returns an HTTP handler showing one
// manufacturer, with its form when withForm is set.
func NewManufacturerGetHandler(svc ManufacturerManager, rnd Renderer, withForm bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		m, err := svc.Get(r.Context(), middlewares.CallerFromContext(r.Context()), id)
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		resp := ManufacturerResponse{Manufacturer: m}
		if withForm {
			resp.Form = &FormView{Fields: forms.ManufacturerForm{}.Fields()}
		}
		rnd.Render(w, http.StatusOK, resp)
	}
}

func NewManufacturerUpdateHandler(svc ManufacturerManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		var form forms.ManufacturerForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		if _, err := svc.Update(r.Context(), middlewares.CallerFromContext(r.Context()), id, form); err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, models.ManufacturerListURL, http.StatusFound)
	}
}

func NewManufacturerDeleteHandler(svc ManufacturerManager, rnd Renderer) http.HandlerFunc {
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
		http.Redirect(w, r, models.ManufacturerListURL, http.StatusFound)
	}
}
