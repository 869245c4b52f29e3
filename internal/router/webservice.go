package router

import (
	"errors"
	"moodle/internal/catalog"
	"moodle/internal/mdlerrors"
	mw "moodle/internal/middleware"
	"moodle/internal/models"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

// FixtureSource provides recorded responses by function name.
type FixtureSource interface {
	Get(function string) ([]byte, error)
	Functions() []string
}

func HealthRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	return router
}

// WebServiceRoutes serves /webservice/rest/server.php from recorded responses.
func WebServiceRoutes(fixtures FixtureSource, token string) *chi.Mux {
	router := chi.NewRouter()

	// Checked in the order the real server does: format, token, function
	router.Use(mw.RequireJSONFormat(), mw.RequireToken(token), mw.FunctionCtx())

	router.Get("/server.php", serverHandler(fixtures))
	router.Post("/server.php", serverHandler(fixtures))

	return router
}

// GET|POST: /server.php
func serverHandler(fixtures FixtureSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mw.FunctionFromContext(r.Context())

		if _, ok := catalog.Lookup(name); !ok {
			e := mdlerrors.NewException("invalidrecord", "Can't find data record in database table external_functions.")
			e.Exception = "dml_missing_record_exception"
			mw.RenderException(w, r, e)
			return
		}

		body, err := fixtures.Get(name)
		if errors.Is(err, mdlerrors.FixtureNotFoundError) {
			glog.Warningf("no fixture recorded for %s", name)
			e := mdlerrors.NewException("servicenotavailable", "Web service is not available (it doesn't exist or might be disabled)")
			e.Exception = "webservice_access_exception"
			mw.RenderException(w, r, e)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			glog.Errorf("error writing %s response: %v", name, err)
		}
	}
}

// FixtureRoutes lists the functions that have a recorded response.
func FixtureRoutes(fixtures FixtureSource) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, fixtures.Functions())
	})

	return router
}

// loginError is the token endpoint's error shape, which differs from web service exceptions.
type loginError struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorcode"`
}

// LoginRoutes serves /login/token.php, handing out token to any non-empty credentials.
func LoginRoutes(token string) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/token.php", tokenHandler(token))
	router.Post("/token.php", tokenHandler(token))

	return router
}

// GET|POST: /token.php
func tokenHandler(token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("username") == "" || r.FormValue("password") == "" {
			render.JSON(w, r, loginError{
				Error:     "Invalid login, please try again",
				ErrorCode: "invalidlogin",
			})
			return
		}

		render.JSON(w, r, models.Token{Token: token})
	}
}
