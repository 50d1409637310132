package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a session token to its caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Caller, error)
}

type callerKey struct{}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, caller *models.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the authenticated caller or nil.
func CallerFromContext(ctx context.Context) *models.Caller {
	caller, _ := ctx.Value(callerKey{}).(*models.Caller)
	return caller
}

// AuthMiddleware returns a middleware that only lets requests with a live
// session through. Anonymous requests are redirected to the login page.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				redirectToLogin(w, r)
				return
			}

			caller, err := auth.Authenticate(ctx, tokenString)
			if errors.Is(err, services.ErrUnauthenticated) {
				redirectToLogin(w, r)
				return
			}
			if err != nil {
				logger.Log.Errorw("authentication failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, caller)))
		})
	}
}

// RequirePermission rejects callers lacking perm with 403.
func RequirePermission(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := CallerFromContext(r.Context())
			if caller == nil {
				redirectToLogin(w, r)
				return
			}
			if !caller.HasPermission(perm) {
				logger.Log.Infow("permission denied", "username", caller.Username, "permission", perm)
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff rejects callers that are not staff with 403.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := CallerFromContext(r.Context())
		if caller == nil {
			redirectToLogin(w, r)
			return
		}
		if !caller.IsStaff {
			logger.Log.Infow("staff only", "username", caller.Username, "uri", r.RequestURI)
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := models.LoginURL + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusFound)
}
