package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCarManager(ctrl)
	list := []models.CarListItem{{
		Car:          models.Car{ID: 2, Model: "Tesla", ManufacturerID: 1},
		Manufacturer: models.Manufacturer{ID: 1, Name: "Test_name", Country: "Test_Country"},
	}}
	svc.EXPECT().List(gomock.Any(), testCaller, models.CarFilter{Model: "Tesla"}).Return(list, nil)

	rr := httptest.NewRecorder()
	NewCarListHandler(svc, JSONRenderer{}).ServeHTTP(rr, newRequest(http.MethodGet, "/cars/?model=Tesla", "", testCaller, ""))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp CarListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, list, resp.CarList)
	assert.Equal(t, "Tesla", resp.SearchForm["model"])
}

func TestCarDetailHandler(t *testing.T) {
	tests := []struct {
		name         string
		drivers      []models.Driver
		wantAssigned bool
	}{
		{name: "caller drives the car", drivers: []models.Driver{{ID: testCaller.DriverID}}, wantAssigned: true},
		{name: "caller does not drive the car", drivers: []models.Driver{{ID: 99}}, wantAssigned: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCarManager(ctrl)
			svc.EXPECT().Get(gomock.Any(), testCaller, int64(5)).Return(&models.CarDetail{
				CarListItem: models.CarListItem{Car: models.Car{ID: 5, Model: "310"}},
				Drivers:     tt.drivers,
			}, nil)

			rr := httptest.NewRecorder()
			NewCarDetailHandler(svc, JSONRenderer{}, false).ServeHTTP(rr, newRequest(http.MethodGet, "/cars/5/", "", testCaller, "5"))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp CarDetailResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantAssigned, resp.IsAssigned)
			assert.Equal(t, "310", resp.Car.Model)
			assert.Nil(t, resp.Form)
		})
	}
}

func TestCarCreateUpdateDeleteHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCarManager(ctrl)
	rnd := JSONRenderer{}
	form := forms.CarForm{Model: "Golf", ManufacturerID: 3, DriverIDs: []int64{1, 2}}
	body := `{"model":"Golf","manufacturer":3,"drivers":[1,2]}`

	svc.EXPECT().Create(gomock.Any(), testCaller, form).Return(&models.Car{ID: 9}, nil)
	rr := httptest.NewRecorder()
	NewCarCreateHandler(svc, rnd).ServeHTTP(rr, newRequest(http.MethodPost, "/cars/create/", body, testCaller, ""))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/cars/", rr.Header().Get("Location"))

	svc.EXPECT().Update(gomock.Any(), testCaller, int64(9), form).
		Return(nil, models.ValidationErrors{"manufacturer": {"Select a valid choice. That choice is not one of the available choices."}})
	rr = httptest.NewRecorder()
	NewCarUpdateHandler(svc, rnd).ServeHTTP(rr, newRequest(http.MethodPost, "/cars/9/update/", body, testCaller, "9"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().Delete(gomock.Any(), testCaller, int64(9)).Return(services.ErrNotFound)
	rr = httptest.NewRecorder()
	NewCarDeleteHandler(svc, rnd).ServeHTTP(rr, newRequest(http.MethodPost, "/cars/9/delete/", "", testCaller, "9"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestToggleAssignHandler(t *testing.T) {
	tests := []struct {
		name             string
		id               string
		callsService     bool
		serviceErr       error
		expectedCode     int
		expectedLocation string
	}{
		{
			name:             "toggled",
			id:               "5",
			callsService:     true,
			expectedCode:     http.StatusFound,
			expectedLocation: "/cars/5/",
		},
		{
			name:         "missing car",
			id:           "404",
			callsService: true,
			serviceErr:   services.ErrNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "abc",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCarAssigner(ctrl)
			if tt.callsService {
				svc.EXPECT().Toggle(gomock.Any(), testCaller, gomock.Any()).Return(true, tt.serviceErr)
			}

			rr := httptest.NewRecorder()
			NewToggleAssignHandler(svc, JSONRenderer{}).ServeHTTP(rr,
				newRequest(http.MethodPost, "/cars/"+tt.id+"/toggle-assign/", "", testCaller, tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}
