package admin

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stayfront/internal/api"
	"stayfront/internal/booking"
	"stayfront/pkg/backendapi"
)

type Handlers struct {
	Clients *api.BackendClients
}

func (h Handlers) client(r *http.Request) *backendapi.Client {
	return h.Clients.For(api.SessionFromContext(r.Context()).ID)
}

func (h Handlers) fetch(r *http.Request) (*backendapi.BookingList, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	list, err := h.client(r).AdminBookings(r.Context(), backendapi.BookingListParams{
		Status:   q.Get("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	// Sorting is applied to the fetched page only, matching the dashboard
	// table behavior.
	SortBookings(list.Items, q.Get("sort"), q.Get("order") == "desc")
	return list, nil
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.fetch(r)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(list.Items))
	for _, b := range list.Items {
		items = append(items, map[string]any{
			"booking":      b,
			"statusBadge":  booking.StatusBadge(b.Status),
			"paymentBadge": booking.PaymentStatusBadge(b.PaymentStatus),
		})
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"total":    list.Total,
		"page":     list.Page,
		"pageSize": list.PageSize,
		"summary":  Summarize(list.Items),
	})
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var req backendapi.AdminUpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	if req.Status != "" {
		if _, err := booking.ParseStatus(req.Status); err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
			return
		}
	}
	if req.PaymentStatus != "" {
		if _, err := booking.ParsePaymentStatus(req.PaymentStatus); err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
			return
		}
	}

	b, err := h.client(r).AdminUpdateBooking(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, b)
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.client(r).AdminDeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h Handlers) Revenue(w http.ResponseWriter, r *http.Request) {
	list, err := h.fetch(r)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, Summarize(list.Items))
}

// ExportCSV streams the fetched bookings page as a CSV download.
func (h Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.fetch(r)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s-%s.csv", time.Now().Format("2006-01-02"), uuid.NewString()[:8])
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"id", "hotel", "room_type", "guest", "check_in", "check_out",
		"guests", "total_amount", "payment_method", "status", "payment_status", "created_at",
	})
	for _, b := range list.Items {
		created := ""
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Format(time.RFC3339)
		}
		_ = cw.Write([]string{
			b.ID, b.HotelName, b.RoomTypeName, b.GuestName,
			b.CheckInDate, b.CheckOutDate,
			strconv.Itoa(b.Guests), b.TotalAmount.String(),
			b.PaymentMethod, b.Status, b.PaymentStatus, created,
		})
	}
	cw.Flush()
}
