package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"enersite-backend/internal/storage"
	"enersite-backend/internal/transport"
)

// serveList writes the result of fetch as a JSON array, going through the
// response cache when key is set and a positive TTL is configured.
func serveList[T any](s *Server, w http.ResponseWriter, r *http.Request, area, key, failMsg string, fetch func(context.Context) ([]T, error)) {
	log := s.logWithRequest(r)
	if !s.cacheEnabled() {
		key = ""
	}
	if key != "" {
		if cached, ok, err := s.Cache.Get(r.Context(), key); err == nil && ok {
			log.Debug(area+": cache hit", slog.String("key", key))
			transport.WriteRaw(w, http.StatusOK, cached)
			return
		} else if err != nil {
			log.Warn(area+": cache read failed", slog.String("error", err.Error()))
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	items, err := fetch(ctx)
	if err != nil {
		log.Error(area+": storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, failMsg, nil)
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Error(area+": encode error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, failMsg, nil)
		return
	}
	if key != "" {
		if err := s.Cache.Set(r.Context(), key, payload, s.Cfg.CacheTTL()); err != nil {
			log.Warn(area+": cache write failed", slog.String("error", err.Error()))
		}
	}

	log.Info(area+": ok", slog.Int("count", len(items)))
	transport.WriteRaw(w, http.StatusOK, payload)
}

// cacheEnabled reports whether list responses may be cached. A zero TTL
// would store entries that never expire.
func (s *Server) cacheEnabled() bool {
	return s.Cache != nil && s.Cfg.CacheTTL() > 0
}

func (s *Server) invalidate(r *http.Request, keys ...string) {
	if s.Cache == nil || len(keys) == 0 {
		return
	}
	if err := s.Cache.Delete(r.Context(), keys...); err != nil {
		s.logWithRequest(r).Warn("cache invalidate: failed", slog.String("error", err.Error()))
	}
}

// writeStoreError maps storage errors from admin writes to responses.
func (s *Server) writeStoreError(w http.ResponseWriter, log *slog.Logger, area string, err error) {
	var ve *storage.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn(area+": validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation error", ve.Fields)
	case errors.Is(err, storage.ErrSlugExists):
		log.Warn(area + ": slug exists")
		transport.WriteError(w, http.StatusConflict, "Slug already exists", nil)
	case errors.Is(err, storage.ErrDetailsExist):
		log.Warn(area + ": details exist")
		transport.WriteError(w, http.StatusConflict, "Project details already exist", nil)
	case errors.Is(err, storage.ErrNotFound):
		log.Warn(area + ": not found")
		transport.WriteError(w, http.StatusNotFound, "Not found", nil)
	default:
		log.Error(area+": storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Database error", nil)
	}
}
