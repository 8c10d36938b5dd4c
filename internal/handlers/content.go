package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"enersite-backend/internal/cache"
	"enersite-backend/internal/models"
	"enersite-backend/internal/storage"
	"enersite-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListSolutions(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, "solutions list", cache.KeySolutions, "Failed to fetch solutions", s.Store.ListSolutions)
}

func (s *Server) GetSolution(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	item, err := s.Store.GetSolutionBySlug(ctx, slug)
	if err != nil {
		log.Error("solutions get: storage error", slog.String("slug", slug), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch solution", nil)
		return
	}
	if item == nil {
		log.Info("solutions get: not found", slog.String("slug", slug))
		transport.WriteError(w, http.StatusNotFound, "Solution not found", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, "projects list", cache.KeyProjects, "Failed to fetch projects", s.Store.ListProjects)
}

func (s *Server) ListFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, "projects featured", cache.KeyFeaturedProjects, "Failed to fetch featured projects", s.Store.ListFeaturedProjects)
}

func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	project, err := s.Store.GetProjectBySlug(ctx, slug)
	if err != nil {
		log.Error("projects get: storage error", slog.String("slug", slug), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch project", nil)
		return
	}
	if project == nil {
		log.Info("projects get: not found", slog.String("slug", slug))
		transport.WriteError(w, http.StatusNotFound, "Project not found", nil)
		return
	}

	details, err := s.Store.GetProjectDetailsByProjectID(ctx, project.ID)
	if err != nil {
		log.Error("projects get: details storage error", slog.String("project_id", project.ID), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch project", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, models.ProjectWithDetails{
		Project: *project,
		Details: details,
	})
}

func (s *Server) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, "team list", cache.KeyTeam, "Failed to fetch team members", s.Store.ListTeamMembers)
}

func (s *Server) ListPartnerTypes(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, "partners list", cache.KeyPartners, "Failed to fetch partner types", s.Store.ListPartnerTypes)
}

// ListFaqs caches only the unfiltered list; category queries go straight to
// storage.
func (s *Server) ListFaqs(w http.ResponseWriter, r *http.Request) {
	filter := storage.FaqFilter{Category: strings.TrimSpace(r.URL.Query().Get("category"))}
	key := cache.KeyFaqs
	if filter.Category != "" {
		key = ""
	}
	serveList(s, w, r, "faqs list", key, "Failed to fetch FAQs", func(ctx context.Context) ([]models.Faq, error) {
		return s.Store.ListFaqs(ctx, filter)
	})
}
