package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"enersite-backend/internal/auth"
	"enersite-backend/internal/cache"
	"enersite-backend/internal/config"
	"enersite-backend/internal/middleware"
	"enersite-backend/internal/models"
	"enersite-backend/internal/storage"
	"enersite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 8 * time.Second
)

type ContactNotifier interface {
	SendContactNotification(ctx context.Context, sub models.ContactSubmission) (string, error)
}

type Server struct {
	Cfg      *config.Config
	Store    storage.Storage
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Notifier ContactNotifier
	Auth     *auth.Manager

	// ContactLimiter and LoginLimiter are optional; nil disables limiting.
	ContactLimiter *middleware.RateLimiter
	LoginLimiter   *middleware.RateLimiter

	pending sync.WaitGroup
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

// Wait blocks until background notifications have finished.
func (s *Server) Wait() {
	s.pending.Wait()
}

// Routes returns the /api router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/solutions", s.ListSolutions)
	r.Get("/solutions/{slug}", s.GetSolution)
	r.Get("/projects", s.ListProjects)
	r.Get("/projects/featured", s.ListFeaturedProjects)
	r.Get("/projects/{slug}", s.GetProject)
	r.Get("/team", s.ListTeamMembers)
	r.Get("/partners", s.ListPartnerTypes)
	r.Get("/faqs", s.ListFaqs)
	r.With(limit(s.ContactLimiter)).Post("/contact", s.CreateContact)

	r.Route("/admin", func(r chi.Router) {
		r.With(limit(s.LoginLimiter)).Post("/login", s.AdminLogin)
		r.Post("/refresh", s.AdminRefresh)
		r.Post("/logout", s.AdminLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(s.Cfg.AdminAPIKey, s.Auth))

			r.Post("/solutions", s.AdminCreateSolution)
			r.Post("/projects", s.AdminCreateProject)
			r.Delete("/projects/{id}", s.AdminDeleteProject)
			r.Post("/projects/{id}/details", s.AdminCreateProjectDetails)
			r.Post("/team", s.AdminCreateTeamMember)
			r.Post("/partners", s.AdminCreatePartnerType)
			r.Post("/faqs", s.AdminCreateFaq)
			r.Get("/contacts", s.AdminListContacts)
			r.Patch("/contacts/{id}/read", s.AdminMarkContactRead)
		})
	})

	return r
}

func limit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}
