package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=car.go -destination=mock_car.go -package=handlers

// CarManager defines the car operations used by the handlers.
type CarManager interface {
	List(ctx context.Context, caller *models.Caller, filter models.CarFilter) ([]models.CarListItem, error)
	Get(ctx context.Context, caller *models.Caller, id int64) (*models.CarDetail, error)
	Create(ctx context.Context, caller *models.Caller, form forms.CarForm) (*models.Car, error)
	Update(ctx context.Context, caller *models.Caller, id int64, form forms.CarForm) (*models.Car, error)
	Delete(ctx context.Context, caller *models.Caller, id int64) error
}

// CarAssigner toggles the caller in a car's driver set.
type CarAssigner interface {
	Toggle(ctx context.Context, caller *models.Caller, carID int64) (bool, error)
}

// CarListResponse is the car list page
// swagger:model CarListResponse
type CarListResponse struct {
	CarList    []models.CarListItem `json:"car_list"`
	SearchForm SearchForm           `json:"search_form"`
}

// CarDetailResponse is the car detail page
// swagger:model CarDetailResponse
type CarDetailResponse struct {
	Car *models.CarDetail `json:"car"`
	// Whether the current driver is one of the car's drivers
	IsAssigned bool      `json:"is_assigned"`
	Form       *FormView `json:"form,omitempty"`
}

// NewCarListHandler returns an HTTP handler listing cars.
// @Summary List cars
// @Description Cars with their manufacturer, filtered by a case-insensitive substring of the model
// @Tags cars
// @Produce json
// @Param model query string false "Model contains"
// @Success 200 {object} handlers.CarListResponse
// @Failure 302 "Redirect to login"
// @Router /cars/ [get]
func NewCarListHandler(svc CarManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model := r.URL.Query().Get("model")

		list, err := svc.List(r.Context(), middlewares.CallerFromContext(r.Context()), models.CarFilter{Model: model})
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		rnd.Render(w, http.StatusOK, CarListResponse{
			CarList:    list,
			SearchForm: SearchForm{"model": model},
		})
	}
}

// NewCarDetailHandler returns an HTTP handler showing a car with its
// manufacturer and drivers, with the edit form when withForm is set.
// @Summary Car detail
// @Tags cars
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} handlers.CarDetailResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /cars/{id}/ [get]
func NewCarDetailHandler(svc CarManager, rnd Renderer, withForm bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		caller := middlewares.CallerFromContext(r.Context())
		car, err := svc.Get(r.Context(), caller, id)
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}

		resp := CarDetailResponse{Car: car, IsAssigned: car.HasDriver(caller.DriverID)}
		if withForm {
			resp.Form = &FormView{Fields: forms.CarForm{}.Fields()}
		}
		rnd.Render(w, http.StatusOK, resp)
	}
}

func NewCarCreateHandler(svc CarManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form forms.CarForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		if _, err := svc.Create(r.Context(), middlewares.CallerFromContext(r.Context()), form); err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, models.CarListURL, http.StatusFound)
	}
}

func NewCarUpdateHandler(svc CarManager, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		var form forms.CarForm
		if err := decodeForm(r, &form); err != nil {
			renderBadBody(w, rnd)
			return
		}

		if _, err := svc.Update(r.Context(), middlewares.CallerFromContext(r.Context()), id, form); err != nil {
			renderError(w, r, rnd, err, form.Fields())
			return
		}
		http.Redirect(w, r, models.CarListURL, http.StatusFound)
	}
}

func NewCarDeleteHandler(svc CarManager, rnd Renderer) http.HandlerFunc {
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
		http.Redirect(w, r, models.CarListURL, http.StatusFound)
	}
}

// NewToggleAssignHandler returns an HTTP handler that adds the current
// driver to the car or removes them from it.
// @Summary Toggle car assignment
// @Description Adds the current driver to the car's drivers or removes them, then redirects to the car
// @Tags cars
// @Param id path int true "Car id"
// @Success 302 "Redirect to the car detail"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /cars/{id}/toggle-assign/ [post]
func NewToggleAssignHandler(svc CarAssigner, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r)
		if !ok {
			renderNotFound(w, rnd)
			return
		}

		if _, err := svc.Toggle(r.Context(), middlewares.CallerFromContext(r.Context()), id); err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}
		http.Redirect(w, r, models.CarDetailURL(id), http.StatusFound)
	}
}
