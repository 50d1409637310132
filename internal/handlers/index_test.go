package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestIndexHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockIndexReader(ctrl)
	svc.EXPECT().Stats(gomock.Any(), testCaller).Return(&models.IndexStats{NumDrivers: 3, NumCars: 5, NumManufacturers: 2, NumVisits: 1}, nil)

	rr := httptest.NewRecorder()
	NewIndexHandler(svc, JSONRenderer{}).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", testCaller, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"num_drivers":3,"num_cars":5,"num_manufacturers":2,"num_visits":1}`, rr.Body.String())

	svc.EXPECT().Stats(gomock.Any(), (*models.Caller)(nil)).Return(nil, services.ErrUnauthenticated)
	rr = httptest.NewRecorder()
	NewIndexHandler(svc, JSONRenderer{}).ServeHTTP(rr, newRequest(http.MethodGet, "/", "", nil, ""))
	assert.Equal(t, http.StatusFound, rr.Code)
}
