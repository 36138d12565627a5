package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds router configuration
type Config struct {
	Handler        *Handler
	MetricsHandler http.Handler
}

// New creates a chi router with every page route configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	h := cfg.Handler

	r.Get("/health", h.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// booking flow
	r.Get("/", h.Home)
	r.Get("/calendar", h.Calendar)
	r.Get("/confirmation", h.Confirmation)
	r.Post("/confirmation", h.SubmitConfirmation)

	// admin dashboard
	r.Route("/dashboard", func(d chi.Router) {
		d.Get("/", h.Dashboard)
		d.Post("/services", h.CreateService)
		d.Post("/services/{id}", h.UpdateService)
		d.Post("/services/{id}/delete", h.DeleteService)

		d.Get("/agendamentos", h.Appointments)
		d.Get("/agendamentos/{id}/editar", h.EditAppointment)
		d.Post("/agendamentos/{id}", h.SaveAppointment)
	})

	return r
}
