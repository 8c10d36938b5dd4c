package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"enersite-backend/internal/cache"
	"enersite-backend/internal/httpx"
	"enersite-backend/internal/models"
	"enersite-backend/internal/transport"
	"enersite-backend/internal/utils"

	"github.com/go-chi/chi/v5"
)

const (
	contactsDefaultLimit = 50
	contactsMaxLimit     = 200
)

type ContactListResponse struct {
	Items  []models.ContactSubmission `json:"items"`
	Total  int64                      `json:"total"`
	Limit  int64                      `json:"limit"`
	Offset int64                      `json:"offset"`
}

// adminCreate decodes and validates an input, stores it and invalidates the
// given cache keys. prepare may fill derived fields before validation.
func adminCreate[In, Out any](s *Server, w http.ResponseWriter, r *http.Request, area string, prepare func(*In), create func(context.Context, In) (Out, error), keys ...string) {
	log := s.logWithRequest(r)
	var req In
	if err := httpx.DecodeRequest(w, r, &req); err != nil {
		log.Warn(area+": invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "Invalid JSON", nil)
		return
	}
	if prepare != nil {
		prepare(&req)
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn(area + ": validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation error", s.Val.Details(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	defer cancel()

	item, err := create(ctx, req)
	if err != nil {
		s.writeStoreError(w, log, area, err)
		return
	}

	s.invalidate(r, keys...)
	log.Info(area + ": created")
	transport.WriteJSON(w, http.StatusCreated, item)
}

func slugOr(slug, title string) string {
	if slug = strings.TrimSpace(slug); slug != "" {
		return slug
	}
	return utils.Slugify(title)
}

func (s *Server) AdminCreateSolution(w http.ResponseWriter, r *http.Request) {
	adminCreate(s, w, r, "admin solutions create", func(in *models.SolutionInput) {
		in.Slug = slugOr(in.Slug, in.Title)
	}, s.Store.CreateSolution, cache.KeySolutions)
}

func (s *Server) AdminCreateProject(w http.ResponseWriter, r *http.Request) {
	adminCreate(s, w, r, "admin projects create", func(in *models.ProjectInput) {
		in.Slug = slugOr(in.Slug, in.Title)
	}, s.Store.CreateProject, cache.KeyProjects, cache.KeyFeaturedProjects)
}

func (s *Server) AdminCreateProjectDetails(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	adminCreate(s, w, r, "admin project details create", func(in *models.ProjectDetailsInput) {
		in.ProjectID = projectID
	}, s.Store.CreateProjectDetails)
}

func (s *Server) AdminCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	adminCreate(s, w, r, "admin team create", nil, s.Store.CreateTeamMember, cache.KeyTeam)
}

func (s *Server) AdminCreatePartnerType(w http.ResponseWriter, r *http.Request) {
	adminCreate(s, w, r, "admin partners create", func(in *models.PartnerTypeInput) {
		in.Slug = slugOr(in.Slug, in.Title)
	}, s.Store.CreatePartnerType, cache.KeyPartners)
}

func (s *Server) AdminCreateFaq(w http.ResponseWriter, r *http.Request) {
	adminCreate(s, w, r, "admin faqs create", nil, s.Store.CreateFaq, cache.KeyFaqs)
}

func (s *Server) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	defer cancel()

	if err := s.Store.DeleteProject(ctx, id); err != nil {
		s.writeStoreError(w, log, "admin projects delete", err)
		return
	}

	s.invalidate(r, cache.KeyProjects, cache.KeyFeaturedProjects)
	log.Info("admin projects delete: ok", slog.String("project_id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), contactsDefaultLimit, contactsMaxLimit)
	if err != nil {
		log.Warn("admin contacts list: invalid pagination", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	items, total, err := s.Store.ListContactSubmissions(ctx, limit, offset)
	if err != nil {
		log.Error("admin contacts list: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Database error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)), slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, ContactListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *Server) AdminMarkContactRead(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	defer cancel()

	item, err := s.Store.MarkContactSubmissionRead(ctx, id)
	if err != nil {
		s.writeStoreError(w, log, "admin contacts read", err)
		return
	}

	log.Info("admin contacts read: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}
