package hotel

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stayfront/internal/api"
	"stayfront/pkg/backendapi"
)

type Handlers struct {
	Clients *api.BackendClients
}

func (h Handlers) client(r *http.Request) *backendapi.Client {
	return h.Clients.For(api.SessionFromContext(r.Context()).ID)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	out, err := h.client(r).Hotels(r.Context(), backendapi.HotelListParams{
		City:     q.Get("city"),
		Search:   q.Get("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}
	out, err := h.client(r).Hotel(r.Context(), id)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}

func (h Handlers) RoomTypes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}
	out, err := h.client(r).RoomTypes(r.Context(), id)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, out)
}
