package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"stayfront/internal/session"
	"stayfront/pkg/config"
)

// SessionMiddleware resolves the browser's session cookie to a session
// record and attaches it to the request context. A missing or unknown cookie
// gets a fresh anonymous session, so every downstream handler can rely on
// one being present.
func SessionMiddleware(cfg config.Config, store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var s *session.Session

			if c, err := r.Cookie(cfg.Session.CookieName); err == nil && c.Value != "" {
				if found, err := store.Get(r.Context(), c.Value); err == nil {
					s = found
				} else if !errors.Is(err, session.ErrNotFound) {
					WriteError(w, http.StatusInternalServerError, "INTERNAL", "session lookup failed")
					return
				}
			}

			if s == nil {
				s = &session.Session{ID: uuid.NewString()}
				if err := store.Put(r.Context(), s); err != nil {
					WriteError(w, http.StatusInternalServerError, "INTERNAL", "session create failed")
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Session.CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   cfg.AppEnv == "prod",
					Expires:  time.Now().Add(time.Duration(cfg.Session.TTLHours) * time.Hour),
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// RequireAuth guards routes that need a signed-in user. The wizard allows
// steps 1 and 2 anonymously; submission and everything account-scoped sits
// behind this.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := SessionFromContext(r.Context())
		if !s.Authenticated() {
			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "sign in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole guards host/admin dashboards. Role comes from the login
// response; the backend re-checks on every call, this is only for fast
// failure.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFromContext(r.Context())
			if !s.Authenticated() {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "sign in required")
				return
			}
			if s.UserRole != role && s.UserRole != "ADMIN" {
				WriteError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
