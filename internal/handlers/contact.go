package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"enersite-backend/internal/httpx"
	"enersite-backend/internal/models"
	"enersite-backend/internal/storage"
	"enersite-backend/internal/transport"
)

const notifyTimeout = 15 * time.Second

type ContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req models.ContactSubmissionInput
	if err := httpx.DecodeRequest(w, r, &req); err != nil {
		log.Warn("contact create: invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "Invalid form data", nil)
		return
	}

	req.Normalize()
	if err := s.Val.Struct(req); err != nil {
		details := s.Val.Details(err)
		log.Warn("contact create: validation error", slog.Any("fields", details))
		transport.WriteError(w, http.StatusBadRequest, "Invalid form data", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
	defer cancel()

	sub, err := s.Store.CreateContactSubmission(ctx, req)
	if err != nil {
		var ve *storage.ValidationError
		if errors.As(err, &ve) {
			log.Warn("contact create: validation error", slog.Any("fields", ve.Fields))
			transport.WriteError(w, http.StatusBadRequest, "Invalid form data", ve.Fields)
			return
		}
		log.Error("contact create: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to submit contact form", nil)
		return
	}

	log.Info("contact create: stored", slog.String("contact_id", sub.ID))
	s.notifyContact(log, sub)
	transport.WriteJSON(w, http.StatusCreated, ContactResponse{
		Message: "Contact submission received successfully",
		ID:      sub.ID,
	})
}

// notifyContact mails the submission in the background. The request has
// already succeeded, so failures are only logged.
func (s *Server) notifyContact(log *slog.Logger, sub models.ContactSubmission) {
	if s.Notifier == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		messageID, err := s.Notifier.SendContactNotification(ctx, sub)
		if err != nil {
			log.Error("contact notify: send failed", slog.String("contact_id", sub.ID), slog.String("error", err.Error()))
			return
		}
		log.Info("contact notify: sent", slog.String("contact_id", sub.ID), slog.String("message_id", messageID))
	}()
}
