package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/jwt"
	"github.com/sbilibin2017/taxi-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		inputBody        string
		mockSetup        func(m *MockLoginer)
		expectedCode     int
		expectedLocation string
		expectCookie     bool
	}{
		{
			name:      "success",
			target:    "/accounts/login/?next=/cars/",
			inputBody: `{"username":"test","password":"test123user"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "test", "test123user").Return("JWT_TOKEN", nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/cars/",
			expectCookie:     true,
		},
		{
			name:      "external next is ignored",
			target:    "/accounts/login/?next=//evil.example",
			inputBody: `{"username":"test","password":"test123user"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "test", "test123user").Return("JWT_TOKEN", nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/",
			expectCookie:     true,
		},
		{
			name:         "invalid JSON",
			target:       "/accounts/login/",
			inputBody:    "{invalid json}",
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "wrong credentials",
			target:    "/accounts/login/",
			inputBody: `{"username":"test","password":"nope"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "test", "nope").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "internal error",
			target:    "/accounts/login/",
			inputBody: `{"username":"test","password":"test123user"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "test", "test123user").Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc, JSONRenderer{}, time.Hour)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(http.MethodPost, tt.target, tt.inputBody, nil, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))

			cookies := rr.Result().Cookies()
			if !tt.expectCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, jwt.SessionCookieName, cookies[0].Name)
			assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
			assert.Equal(t, 3600, cookies[0].MaxAge)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLogouter(ctrl)
	mockSvc.EXPECT().Logout(gomock.Any(), testCaller).Return(nil)

	rr := httptest.NewRecorder()
	NewLogoutHandler(mockSvc).ServeHTTP(rr, newRequest(http.MethodPost, "/accounts/logout/", "", testCaller, ""))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/accounts/login/", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, jwt.SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
