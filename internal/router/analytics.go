package router

import (
	"errors"
	"moodle/internal/analytics"
	"moodle/internal/catalog"
	"moodle/internal/mdlerrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"golang.org/x/sync/errgroup"
)

func AnalyticsRoutes(fixtures FixtureSource) *chi.Mux {
	router := chi.NewRouter()

	// Summaries of every recorded list or record response
	router.Get("/", getAllAnalyticsHandler(fixtures))

	// Summary of one recorded response
	router.Get("/{function}", getAnalyticsHandler(fixtures))

	return router
}

// GET: /{function}
func getAnalyticsHandler(fixtures FixtureSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := summarizeFixture(fixtures, chi.URLParam(r, "function"))

		var exception *mdlerrors.Exception
		switch {
		case errors.Is(err, mdlerrors.UnknownFunctionError), errors.Is(err, mdlerrors.FixtureNotFoundError):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case errors.As(err, &exception):
			http.Error(w, "recorded response is an exception: "+exception.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}

// GET: /
//
// Fixtures are summarised concurrently; recorded exceptions are left out.
func getAllAnalyticsHandler(fixtures FixtureSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := fixtures.Functions()
		summaries := make([]*analytics.Summary, len(names))

		wg := errgroup.Group{}
		for i, name := range names {
			i, name := i, name
			wg.Go(func() error {
				summary, err := summarizeFixture(fixtures, name)

				var exception *mdlerrors.Exception
				if errors.As(err, &exception) {
					glog.V(1).Infof("skipping %s: recorded exception %v", name, exception)
					return nil
				}
				if err != nil {
					return err
				}

				summaries[i] = summary
				return nil
			})
		}

		if err := wg.Wait(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		out := make([]*analytics.Summary, 0, len(summaries))
		for _, s := range summaries {
			if s != nil {
				out = append(out, s)
			}
		}
		render.JSON(w, r, out)
	}
}

func summarizeFixture(fixtures FixtureSource, name string) (*analytics.Summary, error) {
	body, err := fixtures.Get(name)
	if err != nil {
		return nil, err
	}

	res, err := catalog.Decode(name, body)
	if err != nil {
		return nil, err
	}
	return analytics.Summarize(res), nil
}
