package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plainCaller = &models.Caller{DriverID: 1, SessionID: "s1", Username: "test"}
	permCaller  = &models.Caller{DriverID: 2, SessionID: "s2", Username: "maker", Permissions: []string{models.PermAddManufacturer}}
	staffCaller = &models.Caller{DriverID: 3, SessionID: "s3", Username: "admin", IsStaff: true}
)

func TestManufacturerService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockManufacturerStore(ctrl)
	svc := NewManufacturerService(store)

	want := []models.Manufacturer{{ID: 2, Name: "Best_name"}, {ID: 1, Name: "Test_name"}}
	store.EXPECT().List(ctx, models.ManufacturerFilter{Name: "est"}).Return(want, nil)

	got, err := svc.List(ctx, plainCaller, models.ManufacturerFilter{Name: "est"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	store.EXPECT().List(ctx, models.ManufacturerFilter{}).Return(nil, errors.New("db error"))
	_, err = svc.List(ctx, plainCaller, models.ManufacturerFilter{})
	assert.EqualError(t, err, "db error")

	_, err = svc.List(ctx, nil, models.ManufacturerFilter{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestManufacturerService_Create(t *testing.T) {
	ctx := context.Background()
	valid := forms.ManufacturerForm{Name: "Lincoln", Country: "USA"}

	tests := []struct {
		name    string
		caller  *models.Caller
		form    forms.ManufacturerForm
		saves   bool
		saveErr error
		wantErr error
	}{
		{name: "caller with permission", caller: permCaller, form: valid, saves: true},
		{name: "staff", caller: staffCaller, form: valid, saves: true},
		{name: "caller without permission", caller: plainCaller, form: valid, wantErr: ErrPermissionDenied},
		{name: "anonymous", caller: nil, form: valid, wantErr: ErrUnauthenticated},
		{
			name:    "duplicate name",
			caller:  permCaller,
			form:    valid,
			saves:   true,
			saveErr: models.ValidationErrors{"name": {"Manufacturer with this Name already exists."}},
			wantErr: models.ValidationErrors{"name": {"Manufacturer with this Name already exists."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockManufacturerStore(ctrl)
			svc := NewManufacturerService(store)

			if tt.saves {
				store.EXPECT().Save(ctx, &models.Manufacturer{Name: "Lincoln", Country: "USA"}).
					DoAndReturn(func(_ context.Context, m *models.Manufacturer) error {
						m.ID = 10
						return tt.saveErr
					})
			}

			m, err := svc.Create(ctx, tt.caller, tt.form)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), m.ID)
		})
	}
}

func TestManufacturerService_Create_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewManufacturerService(NewMockManufacturerStore(ctrl))

	_, err := svc.Create(context.Background(), permCaller, forms.ManufacturerForm{Name: "  "})
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("name"))
	assert.True(t, verrs.Has("country"))
}

func TestManufacturerService_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockManufacturerStore(ctrl)
	svc := NewManufacturerService(store)

	store.EXPECT().Update(ctx, &models.Manufacturer{ID: 4, Name: "BMW", Country: "Germany"}).Return(nil)
	m, err := svc.Update(ctx, plainCaller, 4, forms.ManufacturerForm{Name: "BMW", Country: "Germany"})
	require.NoError(t, err)
	assert.Equal(t, "BMW Germany", m.String())

	store.EXPECT().Update(ctx, gomock.Any()).Return(sql.ErrNoRows)
	_, err = svc.Update(ctx, plainCaller, 404, forms.ManufacturerForm{Name: "BMW", Country: "Germany"})
	assert.ErrorIs(t, err, ErrNotFound)

	store.EXPECT().Delete(ctx, int64(4)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, plainCaller, 4))

	store.EXPECT().Delete(ctx, int64(404)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(ctx, plainCaller, 404), ErrNotFound)

	store.EXPECT().GetByID(ctx, int64(404)).Return(nil, sql.ErrNoRows)
	_, err = svc.Get(ctx, plainCaller, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
