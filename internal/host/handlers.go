package host

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stayfront/internal/api"
	"stayfront/internal/booking"
	"stayfront/pkg/backendapi"
)

// Handlers drive the host dashboard: list bookings for the host's hotels and
// request status transitions. A transition is fire-and-forget against the
// backend followed by a full re-fetch of the record; the gateway never
// guesses the resulting status.
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

	list, err := h.client(r).HostBookings(r.Context(), backendapi.BookingListParams{
		Status:   q.Get("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(list.Items))
	for _, b := range list.Items {
		items = append(items, hostView(b))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"total":    list.Total,
		"page":     list.Page,
		"pageSize": list.PageSize,
	})
}

func (h Handlers) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*backendapi.Client).HostConfirmBooking)
}

func (h Handlers) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*backendapi.Client).HostCancelBooking)
}

func (h Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*backendapi.Client).HostCompleteBooking)
}

func (h Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*backendapi.Client).HostConfirmPayment)
}

func (h Handlers) transition(w http.ResponseWriter, r *http.Request, op func(*backendapi.Client, context.Context, string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	client := h.client(r)
	if err := op(client, r.Context(), id); err != nil {
		api.WriteBackendError(w, err)
		return
	}

	// Reload the record; the server decided the new status.
	b, err := client.HostBooking(r.Context(), id)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, hostView(*b))
}

func hostView(b backendapi.Booking) map[string]any {
	return map[string]any{
		"booking":      b,
		"statusBadge":  booking.StatusBadge(b.Status),
		"paymentBadge": booking.PaymentStatusBadge(b.PaymentStatus),
	}
}
