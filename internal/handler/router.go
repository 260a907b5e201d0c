package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/middleware"
)

// Handlers collects the HTTP handlers wired into the router.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Lookup      *LookupHandler
	Company     *CompanyHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Health      *HealthHandler
}

func NewRouter(h Handlers, jwtAuth auth.JWTAuthenticator) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	r.Get("/healthz", h.Health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/google", h.Auth.GoogleLogin)

		r.Get("/lookups/{kind}", h.Lookup.Search)
		r.Get("/companies/{id}", h.Company.GetByID)
		r.Get("/jobs", h.Job.Browse)
		r.Get("/jobs/{id}", h.Job.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtAuth))

			r.Post("/auth/request-otp", h.Auth.RequestOTP)
			r.Post("/auth/verify-otp", h.Auth.VerifyOTP)

			r.Get("/users/me", h.User.Me)
			r.Put("/users/me", h.User.UpdateMe)

			r.Post("/lookups/{kind}", h.Lookup.Create)

			r.Post("/companies", h.Company.Create)
			r.Get("/companies/mine", h.Company.ListMine)
			r.Put("/companies/{id}", h.Company.Update)

			r.Post("/companies/{companyId}/jobs", h.Job.CreateForCompany)
			r.Get("/companies/{companyId}/jobs", h.Job.ListForCompany)
			r.Put("/jobs/{id}", h.Job.Update)

			r.Post("/jobs/{id}/applications", h.Application.Apply)
			r.Get("/jobs/{id}/applications", h.Application.ListForJob)
			r.Get("/applications/mine", h.Application.ListMine)
		})
	})

	return r
}
