package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bmeers/student-intake/app"
	"github.com/bmeers/student-intake/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.
		With(middlewares.WebhookSecret(app.Config)).
		Post("/webhook/forms", ReceiveFormSubmission(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.Config))

		r.Get("/applications", ListApplications(app))
		r.Get(`/applications/{id:^\d+$}`, GetApplicationById(app))
		r.Delete(`/applications/{id:^\d+$}`, DeleteApplication(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}
