package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=index.go -destination=mock_index.go -package=handlers

// IndexReader builds the home page summary.
type IndexReader interface {
	Stats(ctx context.Context, caller *models.Caller) (*models.IndexStats, error)
}

// NewIndexHandler returns an HTTP handler for the home page.
// @Summary Home page
// @Description Counts of drivers, cars and manufacturers plus the visits of the current session
// @Tags index
// @Produce json
// @Success 200 {object} models.IndexStats
// @Failure 302 "Redirect to login"
// @Router / [get]
func NewIndexHandler(svc IndexReader, rnd Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context(), middlewares.CallerFromContext(r.Context()))
		if err != nil {
			renderError(w, r, rnd, err, nil)
			return
		}
		rnd.Render(w, http.StatusOK, stats)
	}
}
