package review

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"stayfront/internal/api"
	"stayfront/pkg/backendapi"
)

const maxCommentLen = 2000

type Handlers struct {
	Clients *api.BackendClients
}

func (h Handlers) client(r *http.Request) *backendapi.Client {
	return h.Clients.For(api.SessionFromContext(r.Context()).ID)
}

func (h Handlers) ListForHotel(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	out, err := h.client(r).HotelReviews(r.Context(), hotelID, page, pageSize)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req backendapi.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	if msg := validate(req.Rating, req.Comment); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}
	if strings.TrimSpace(req.HotelID) == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "hotelId is required")
		return
	}

	out, err := h.client(r).CreateReview(r.Context(), req)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, out)
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	if msg := validate(req.Rating, req.Comment); msg != "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", msg)
		return
	}

	out, err := h.client(r).UpdateReview(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Comment)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client(r).DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func validate(rating int, comment string) string {
	if rating < 1 || rating > 5 {
		return "rating must be between 1 and 5"
	}
	if len(comment) > maxCommentLen {
		return "comment is too long"
	}
	return ""
}
