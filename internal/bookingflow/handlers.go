package bookingflow

import (
	"encoding/json"
	"net/http"

	"stayfront/internal/api"
	"stayfront/internal/session"
	"stayfront/pkg/backendapi"
)

// Handlers exposes the wizard to the browser layer. The live step-by-step
// state stays client-side (it is component state, same as the original);
// the gateway owns validation, the pending-booking snapshot, and submission.
type Handlers struct {
	Sessions session.Store
	Clients  *api.BackendClients
}

type validateRequest struct {
	Draft Draft `json:"draft"`
	Step  int   `json:"step"`
}

type validateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func (h Handlers) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}

	f := New()
	f.Draft = req.Draft
	errs := f.ValidateStep(req.Step)
	api.WriteJSON(w, http.StatusOK, validateResponse{Valid: len(errs) == 0, Errors: errs})
}

type quoteResponse struct {
	Nights      int    `json:"nights"`
	TotalAmount string `json:"totalAmount"`
}

// Quote returns nights × pricePerNight for display. Advisory: the backend
// recomputes the real total at submission.
func (h Handlers) Quote(w http.ResponseWriter, r *http.Request) {
	var d Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	api.WriteJSON(w, http.StatusOK, quoteResponse{
		Nights:      d.Nights(),
		TotalAmount: d.Total().String(),
	})
}

func (h Handlers) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"methods": AllowedPaymentMethods()})
}

// Voucher checks a discount code against the draft's total. Display-only:
// the code itself rides along in the create request and the backend applies
// the real discount there.
func (h Handlers) Voucher(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code  string `json:"code"`
		Draft Draft  `json:"draft"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	if req.Code == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "voucher code is required")
		return
	}

	total := req.Draft.TotalAmount
	if !total.IsPositive() {
		total = req.Draft.Total()
	}

	s := api.SessionFromContext(r.Context())
	result, err := h.Clients.For(s.ID).ValidateVoucher(r.Context(), req.Code, total)
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, result)
}

// SavePending stores the wizard snapshot so the draft survives the login
// redirect round-trip.
func (h Handlers) SavePending(w http.ResponseWriter, r *http.Request) {
	var snap json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}
	// Reject blobs a later Restore would choke on.
	if err := New().Restore(snap); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "malformed booking snapshot")
		return
	}

	s := api.SessionFromContext(r.Context())
	s.PendingBooking = snap
	if err := h.Sessions.Put(r.Context(), s); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "session save failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h Handlers) ResumePending(w http.ResponseWriter, r *http.Request) {
	s := api.SessionFromContext(r.Context())
	if len(s.PendingBooking) == 0 {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "no pending booking")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.PendingBooking)
}

func (h Handlers) ClearPending(w http.ResponseWriter, r *http.Request) {
	s := api.SessionFromContext(r.Context())
	s.PendingBooking = nil
	if err := h.Sessions.Put(r.Context(), s); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "session save failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type submitResponse struct {
	Booking *backendapi.Booking `json:"booking"`
}

// Submit is the step-4 create. Anonymous users get their draft parked in the
// session and a LOGIN_REQUIRED error, so nothing typed so far is lost across
// the redirect. Validation failures come back as the usual field→message
// map. A failed create leaves the snapshot in place; resubmission needs no
// re-entry.
func (h Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	var d Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request body")
		return
	}

	s := api.SessionFromContext(r.Context())
	if !s.Authenticated() {
		f := New()
		f.Draft = d
		f.SetStep(StepConfirm)
		if snap, err := f.Snapshot(); err == nil {
			s.PendingBooking = snap
			_ = h.Sessions.Put(r.Context(), s)
		}
		api.WriteError(w, http.StatusUnauthorized, "LOGIN_REQUIRED", "sign in to complete your booking")
		return
	}

	f := New()
	f.Draft = d
	f.SetStep(StepConfirm)
	if errs := f.ValidateStep(StepConfirm); len(errs) != 0 {
		api.WriteJSON(w, http.StatusUnprocessableEntity, validateResponse{Valid: false, Errors: errs})
		return
	}

	client := h.Clients.For(s.ID)

	// Last availability look before committing. The backend re-checks inside
	// the create; this just gives a friendlier failure for the common race.
	if ok, err := client.CheckAvailability(r.Context(), d.RoomTypeID, d.CheckInDate, d.CheckOutDate); err == nil && !ok {
		api.WriteError(w, http.StatusConflict, "BOOKING_CONFLICT",
			"This room is no longer available for the selected dates. Please choose different dates or another room.")
		return
	}

	total := d.TotalAmount
	if !total.IsPositive() {
		total = d.Total()
	}
	booking, err := client.CreateBooking(r.Context(), backendapi.CreateBookingRequest{
		HotelID:         d.HotelID,
		RoomTypeID:      d.RoomTypeID,
		CheckInDate:     d.CheckInDate,
		CheckOutDate:    d.CheckOutDate,
		Guests:          d.Guests,
		TotalAmount:     total,
		PaymentMethod:   d.PaymentMethod,
		SpecialRequests: d.SpecialRequests,
		VoucherCode:     d.VoucherCode,
	})
	if err != nil {
		api.WriteBackendError(w, err)
		return
	}

	// Success: the parked draft is done with.
	if len(s.PendingBooking) > 0 {
		s.PendingBooking = nil
		_ = h.Sessions.Put(r.Context(), s)
	}

	api.WriteJSON(w, http.StatusCreated, submitResponse{Booking: booking})
}
