package upload

import (
	"encoding/json"
	"net/http"
	"strings"

	"stayfront/internal/api"
)

// Handlers request presigned upload slots for review photos. Bytes go
// straight from the browser to the storage provider; the gateway only brokers
// the ticket.
type Handlers struct {
	Clients *api.BackendClients
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func (h Handlers) RequestTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename    string `json:"filename"`
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	req.Filename = strings.TrimSpace(req.Filename)
	if req.Filename == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "filename is required")
		return
	}
	if !allowedContentTypes[req.ContentType] {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unsupported content type")
		return
	}

	s := api.SessionFromContext(r.Context())
	ticket, err := h.Clients.For(s.ID).RequestUpload(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, ticket)
}
