package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"enersite-backend/internal/auth"
	"enersite-backend/internal/httpx"
	"enersite-backend/internal/middleware"
	"enersite-backend/internal/transport"
)

const (
	RefreshCookie     = "enersite_refresh"
	refreshCookiePath = "/api/admin"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Status string `json:"status"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Auth == nil || s.Cfg.AdminPasswordHash == "" {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "Admin auth not configured", nil)
		return
	}

	var req AdminLoginRequest
	if err := httpx.DecodeRequest(w, r, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "Invalid JSON", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "Validation error", s.Val.Details(err))
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.Cfg.AdminUser)) == 1
	passErr := auth.ComparePassword(s.Cfg.AdminPasswordHash, req.Password)
	if !userOK || passErr != nil {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if !s.issueSession(w, r, "admin login") {
		return
	}
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

func (s *Server) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Auth == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "Admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(RefreshCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "Missing refresh token", nil)
		return
	}

	claims, err := s.Auth.ParseKind(cookie.Value, auth.KindRefresh)
	if err != nil || claims.Role != auth.RoleAdmin {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "Invalid refresh token", nil)
		return
	}

	if !s.issueSession(w, r, "admin refresh") {
		return
	}
	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	clearAuthCookies(w, s.Cfg.CookieSecure)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, AdminLoginResponse{Status: "ok"})
}

func (s *Server) issueSession(w http.ResponseWriter, r *http.Request, area string) bool {
	pair, err := s.Auth.Issue(auth.RoleAdmin)
	if err != nil {
		s.logWithRequest(r).Error(area+": token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Token error", nil)
		return false
	}
	setAuthCookies(w, pair, s.Auth.AccessTTL, s.Auth.RefreshTTL, s.Cfg.CookieSecure)
	return true
}

func setAuthCookies(w http.ResponseWriter, pair auth.TokenPair, accessTTL, refreshTTL time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    pair.Access,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    pair.Refresh,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	})
}

func clearAuthCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	for _, c := range []struct{ name, path string }{
		{middleware.AccessCookie, "/"},
		{RefreshCookie, refreshCookiePath},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     c.name,
			Value:    "",
			Path:     c.path,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			Expires:  expire,
			MaxAge:   -1,
		})
	}
}
