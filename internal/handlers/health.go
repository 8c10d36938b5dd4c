package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"enersite-backend/internal/transport"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.logWithRequest(r).Error("healthz: storage unreachable", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	transport.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
