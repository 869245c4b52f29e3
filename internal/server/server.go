package server

import (
	"fmt"
	"log"
	"moodle/internal/config"
	rtr "moodle/internal/router"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

func Routes(fixtures rtr.FixtureSource, token string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger, // Log API Request Calls
	)

	router.Route("/", func(r chi.Router) {
		r.Mount("/", rtr.HealthRoutes())
	})

	router.Mount("/webservice/rest", rtr.WebServiceRoutes(fixtures, token))
	router.Mount("/login", rtr.LoginRoutes(token))
	router.Mount("/fixtures", rtr.FixtureRoutes(fixtures))
	router.Mount("/analytics", rtr.AnalyticsRoutes(fixtures))

	return router
}

// Handler wraps the routes with CORS for the configured origins.
func Handler(fixtures rtr.FixtureSource, token string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: config.Config.AllowedOrigins,
		AllowedHeaders: []string{"Content-Type"},
		AllowedMethods: []string{"GET", "POST"},
	})

	return c.Handler(Routes(fixtures, token))
}

// NewToken returns a random 32 character hex token, the format the real server issues.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func Start(fixtures rtr.FixtureSource) {
	if config.Config == nil {
		log.Panic("❌ Missing or invalid configuration!")
	}

	token := config.Config.Token
	if token == "" {
		token = NewToken()
		log.Printf("🔑 No token configured. Generated web service token %s\n", token)
	}

	log.Printf("Server is listening on port %v\n", config.Config.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", config.Config.Port), Handler(fixtures, token)))
}
