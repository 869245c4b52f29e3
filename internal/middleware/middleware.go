package middleware

import (
	"context"
	"moodle/internal/mdlerrors"
	"net/http"

	"github.com/go-chi/render"
)

type contextKey string

const functionKey contextKey = "wsfunction"

// RequireJSONFormat rejects requests that ask for a response format other than JSON.
func RequireJSONFormat() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if format := r.FormValue("moodlewsrestformat"); format != "json" {
				e := mdlerrors.NewException("invalidparameter", "Invalid parameter value detected (moodlewsrestformat: "+format+")")
				e.Exception = "invalid_parameter_exception"
				RenderException(w, r, e)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireToken rejects requests whose wstoken does not match token.
func RequireToken(token string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.FormValue("wstoken") != token {
				RenderException(w, r, mdlerrors.NewException("invalidtoken", "Invalid token - token not found"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FunctionCtx stores the requested web service function in the request context.
func FunctionCtx() func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), functionKey, r.FormValue("wsfunction"))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FunctionFromContext returns the function stored by FunctionCtx.
func FunctionFromContext(ctx context.Context) string {
	name, _ := ctx.Value(functionKey).(string)
	return name
}

// RenderException answers with a web service exception. Like the real server, exceptions are sent
// with status 200.
func RenderException(w http.ResponseWriter, r *http.Request, e *mdlerrors.Exception) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, e)
}
