package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/jwt"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/middlewares"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Logouter ends a session.
type Logouter interface {
	Logout(ctx context.Context, caller *models.Caller) error
}

// LoginRequest represents the JSON body for driver login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: admin.user
	Username string `json:"username"`

	// Password
	// required: true
	// default: 1qazcde3
	Password string `json:"password"`
}

// LoginFields describes the login form.
var LoginFields = []forms.Field{
	{Name: "username", Label: "Username", Type: "text", Required: true},
	{Name: "password", Label: "Password", Type: "password", Required: true},
}

// NewLoginHandler returns an HTTP handler for driver login. On success the
// session cookie is set and the client is sent to ?next= or the home page.
// @Summary Driver login
// @Description Authenticate a driver and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Param next query string false "Where to go after login"
// @Success 302 "Redirect to next"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.FormView "Invalid username or password"
// @Router /accounts/login/ [post]
func NewLoginHandler(svc Loginer, rnd Renderer, exp time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeForm(r, &req); err != nil {
			renderBadBody(w, rnd)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				errs := models.ValidationErrors{}
				errs.Add(models.NonFieldErrors, "Please enter a correct username and password. Note that both fields may be case-sensitive.")
				rnd.Render(w, http.StatusUnauthorized, FormView{Fields: LoginFields, Errors: errs})
				return
			}
			renderError(w, r, rnd, err, LoginFields)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(exp.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
	}
}

// NewLogoutHandler returns an HTTP handler that ends the session and
// clears the cookie.
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middlewares.CallerFromContext(r.Context())); err != nil {
			logger.Log.Errorw("failed to logout", "err", err)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, models.LoginURL, http.StatusFound)
	}
}

// safeNext only follows local paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return models.IndexURL
	}
	return next
}
