package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/services"
)

// Renderer turns a view into a response body.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view any)
}

// JSONRenderer renders every view as a JSON document.
type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, status int, view any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// ErrorResponse represents a request that could not be served
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`
}

// FormView describes a form and, after a failed submit, its errors
// swagger:model FormView
type FormView struct {
	Fields []forms.Field            `json:"fields"`
	Errors models.ValidationErrors `json:"errors,omitempty"`
}

// SearchForm echoes the search query back to the list page.
type SearchForm map[string]string

// decodeForm reads a JSON body into dst. An empty body leaves dst zeroed.
func decodeForm(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func renderBadBody(w http.ResponseWriter, rnd Renderer) {
	rnd.Render(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func renderNotFound(w http.ResponseWriter, rnd Renderer) {
	rnd.Render(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
}

// renderError maps service errors to responses. fields is the form shown
// again next to validation errors.
func renderError(w http.ResponseWriter, r *http.Request, rnd Renderer, err error, fields []forms.Field) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		rnd.Render(w, http.StatusBadRequest, FormView{Fields: fields, Errors: verrs})
	case errors.Is(err, services.ErrNotFound):
		renderNotFound(w, rnd)
	case errors.Is(err, services.ErrUnauthenticated):
		http.Redirect(w, r, models.LoginURL+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
	case errors.Is(err, services.ErrPermissionDenied):
		rnd.Render(w, http.StatusForbidden, ErrorResponse{Error: "Permission denied"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		rnd.Render(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// NewFormHandler returns an HTTP handler describing an empty form.
func NewFormHandler(rnd Renderer, fields []forms.Field) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, map[string]any{"form": FormView{Fields: fields}})
	}
}
