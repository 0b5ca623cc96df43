package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"stayfront/internal/api"
	"stayfront/internal/session"
)

type Handlers struct {
	Sessions session.Store
	Clients  *api.BackendClients
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User           any  `json:"user"`
	PendingBooking bool `json:"pendingBooking"`
}

// Login signs the user in against the backend and binds the credentials to
// the browser session. The response flags whether an interrupted booking
// draft is waiting so the frontend can jump straight back into the wizard.
func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "email and password are required")
		return
	}

	s := api.SessionFromContext(r.Context())
	client := h.Clients.For(s.ID)

	user, err := client.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}

	// Login stored the tokens; reload and add the user profile.
	s, err = h.Sessions.Get(r.Context(), s.ID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "session reload failed")
		return
	}
	s.UserID = user.ID
	s.UserEmail = user.Email
	s.UserName = user.FullName
	s.UserRole = user.Role
	if err := h.Sessions.Put(r.Context(), s); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "session save failed")
		return
	}

	api.WriteJSON(w, http.StatusOK, loginResponse{
		User:           user,
		PendingBooking: len(s.PendingBooking) > 0,
	})
}

func (h Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	s := api.SessionFromContext(r.Context())
	if err := h.Clients.For(s.ID).Logout(r.Context()); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "logout failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h Handlers) Me(w http.ResponseWriter, r *http.Request) {
	s := api.SessionFromContext(r.Context())
	if !s.Authenticated() {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
		return
	}

	// Prefer the live profile; fall back to the session copy when the
	// backend is unreachable but the token still looks good.
	if user, err := h.Clients.For(s.ID).Me(r.Context()); err == nil {
		api.WriteJSON(w, http.StatusOK, user)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"id":       s.UserID,
		"email":    s.UserEmail,
		"fullName": s.UserName,
		"role":     s.UserRole,
	})
}
