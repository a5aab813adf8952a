package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter mounts the API. Three access tiers: public, authenticated, and
// admin. The admin tier stacks RequireAdmin on top of Authenticate so the
// handler always sees a resolved admin user.
func NewRouter(app *handlers.App, logger zerolog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(corsOrigins),
	)

	authed := middleware.Authenticate(app.Credentials, app.Users)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", app.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", app.Signup)
			r.Post("/login", app.Login)
			r.With(authed).Get("/me", app.Me)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", app.EventsList)
			r.Get("/{id}", app.EventsGet)
			r.With(authed).Post("/{id}/register", app.EventsRegister)

			r.Group(func(r chi.Router) {
				r.Use(authed, middleware.RequireAdmin)
				r.Post("/", app.EventsCreate)
				r.Put("/{id}", app.EventsUpdate)
				r.Delete("/{id}", app.EventsDelete)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/total", app.DonationsTotal)
			r.With(authed).Post("/", app.DonationsCreate)
			r.With(authed, middleware.RequireAdmin).Get("/", app.DonationsList)
		})

		r.Route("/volunteer", func(r chi.Router) {
			r.With(authed).Post("/apply", app.VolunteerApply)

			r.Group(func(r chi.Router) {
				r.Use(authed, middleware.RequireAdmin)
				r.Get("/applications", app.VolunteerApplicationsList)
				r.Patch("/applications/{id}", app.VolunteerApplicationReview)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", app.ContactCreate)

			r.Group(func(r chi.Router) {
				r.Use(authed, middleware.RequireAdmin)
				r.Get("/submissions", app.ContactSubmissionsList)
				r.Patch("/submissions/{id}", app.ContactSubmissionUpdate)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(authed)
			r.Get("/events", app.UserEvents)
			r.Get("/donations", app.UserDonations)
			r.Get("/volunteer", app.UserVolunteer)
		})

		r.With(authed, middleware.RequireAdmin).Get("/admin/stats", app.AdminStats)
	})

	return r
}
