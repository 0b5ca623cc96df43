package booking

import (
	"encoding/json"
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

func listParams(r *http.Request) backendapi.BookingListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	return backendapi.BookingListParams{
		Status:   q.Get("status"),
		Page:     page,
		PageSize: pageSize,
	}
}

// bookingView decorates a backend booking with the badges the tables render.
type bookingView struct {
	backendapi.Booking
	StatusBadge  Badge `json:"statusBadge"`
	PaymentBadge Badge `json:"paymentBadge"`
}

func decorate(b backendapi.Booking) bookingView {
	return bookingView{
		Booking:      b,
		StatusBadge:  StatusBadge(b.Status),
		PaymentBadge: PaymentStatusBadge(b.PaymentStatus),
	}
}

func decorateList(list *backendapi.BookingList) map[string]any {
	items := make([]bookingView, 0, len(list.Items))
	for _, b := range list.Items {
		items = append(items, decorate(b))
	}
	return map[string]any{
		"items":    items,
		"total":    list.Total,
		"page":     list.Page,
		"pageSize": list.PageSize,
	}
}

func (h Handlers) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	roomTypeID := q.Get("roomTypeId")
	in := q.Get("checkInDate")
	out := q.Get("checkOutDate")
	if roomTypeID == "" || in == "" || out == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "roomTypeId, checkInDate and checkOutDate are required")
		return
	}

	available, err := h.client(r).CheckAvailability(r.Context(), roomTypeID, in, out)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h Handlers) MyList(w http.ResponseWriter, r *http.Request) {
	list, err := h.client(r).MyBookings(r.Context(), listParams(r))
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, decorateList(list))
}

func (h Handlers) MyGet(w http.ResponseWriter, r *http.Request) {
	b, err := h.client(r).MyBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, decorate(*b))
}

func (h Handlers) MyCancel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b, err := h.client(r).CancelMyBooking(r.Context(), chi.URLParam(r, "id"), body.Reason)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, decorate(*b))
}

// PaymentStatus polls the backend after a VNPay return redirect.
func (h Handlers) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	out, err := h.client(r).PaymentStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"bookingId":     out.BookingID,
		"paymentStatus": out.PaymentStatus,
		"paymentBadge":  PaymentStatusBadge(out.PaymentStatus),
	})
}

// PaymentURL hands the browser a VNPay redirect URL for an unpaid booking.
func (h Handlers) PaymentURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReturnURL string `json:"returnUrl"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	url, err := h.client(r).CreatePaymentURL(r.Context(), chi.URLParam(r, "id"), body.ReturnURL)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"paymentUrl": url})
}
