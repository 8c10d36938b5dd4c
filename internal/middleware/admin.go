package middleware

import (
	"crypto/subtle"
	"net/http"

	"enersite-backend/internal/auth"
	"enersite-backend/internal/transport"
)

const AccessCookie = "enersite_access"

// AdminAuth accepts either the static X-Admin-Key header or an admin access
// token in the session cookie.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "Admin auth not configured", nil)
				return
			}

			if adminKey != "" {
				given := r.Header.Get("X-Admin-Key")
				if given != "" && subtle.ConstantTimeCompare([]byte(given), []byte(adminKey)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			if manager != nil {
				cookie, err := r.Cookie(AccessCookie)
				if err == nil && cookie.Value != "" {
					claims, err := manager.ParseKind(cookie.Value, auth.KindAccess)
					if err == nil && claims.Role == auth.RoleAdmin {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		})
	}
}
