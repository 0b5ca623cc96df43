package bookingflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Wizard steps, in order. Navigation clamps into [StepReview, StepConfirm];
// there is no way to leave the range.
const (
	StepReview    = 1
	StepGuestInfo = 2
	StepPayment   = 3
	StepConfirm   = 4
)

// ErrLocked is returned for mutations attempted while a submission is in
// flight. The Loading flag is advisory mutual exclusion: it stops the happy
// path from double-submitting, nothing more.
var ErrLocked = errors.New("booking flow is locked while submitting")

// Flow is the four-step booking wizard state: the draft under construction,
// the current step, per-field errors and touched flags, and the in-flight
// submission flag.
type Flow struct {
	Draft   Draft             `json:"draft"`
	Step    int               `json:"step"`
	Errors  map[string]string `json:"errors"`
	Touched map[string]bool   `json:"touched"`
	Loading bool              `json:"loading"`

	// today is swappable in tests; date validation needs a stable "now".
	today func() time.Time
}

func New() *Flow {
	return &Flow{
		Step:    StepReview,
		Draft:   Draft{Guests: 1},
		Errors:  map[string]string{},
		Touched: map[string]bool{},
	}
}

func clampStep(n int) int {
	if n < StepReview {
		return StepReview
	}
	if n > StepConfirm {
		return StepConfirm
	}
	return n
}

// SetStep moves to step n, clamped into bounds. No validation, no side
// effects beyond the step change; callers gate forward movement on
// ValidateStep themselves.
func (f *Flow) SetStep(n int) {
	f.Step = clampStep(n)
}

func (f *Flow) Next() { f.SetStep(f.Step + 1) }
func (f *Flow) Prev() { f.SetStep(f.Step - 1) }

// Update merges one field into the draft and marks it touched. It does not
// validate; errors only change when ValidateStep runs. Mutation is refused
// while a submission is in flight.
func (f *Flow) Update(field string, value string) error {
	if f.Loading {
		return ErrLocked
	}

	switch field {
	case "hotelId":
		f.Draft.HotelID = value
	case "roomTypeId":
		f.Draft.RoomTypeID = value
	case "checkInDate":
		f.Draft.CheckInDate = value
	case "checkOutDate":
		f.Draft.CheckOutDate = value
	case "guests":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("guests must be a number")
		}
		f.Draft.Guests = n
	case "maxOccupancy":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("maxOccupancy must be a number")
		}
		f.Draft.MaxOccupancy = n
	case "pricePerNight":
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("pricePerNight must be a decimal")
		}
		f.Draft.PricePerNight = d
	case "totalAmount":
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("totalAmount must be a decimal")
		}
		f.Draft.TotalAmount = d
	case "paymentMethod":
		f.Draft.PaymentMethod = value
	case "specialRequests":
		f.Draft.SpecialRequests = value
	case "voucherCode":
		f.Draft.VoucherCode = value
	case "guestName":
		f.Draft.GuestName = value
	case "guestEmail":
		f.Draft.GuestEmail = value
	case "guestPhone":
		f.Draft.GuestPhone = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	f.Touched[field] = true
	return nil
}

// ValidateStep validates one step, stores the result as the current error
// map, and returns it.
func (f *Flow) ValidateStep(step int) map[string]string {
	errs := ValidateStep(f.Draft, clampStep(step), f.now())
	f.Errors = errs
	return errs
}

// RecalcTotal refreshes the advisory total from pricePerNight × nights.
func (f *Flow) RecalcTotal() {
	f.Draft.TotalAmount = f.Draft.Total()
}

// Reset restores the initial state: step 1, fresh draft, no errors, no
// touched fields, not loading.
func (f *Flow) Reset() {
	today := f.today
	*f = *New()
	f.today = today
}

// snapshot is the persisted shape of an interrupted wizard (the
// "pendingBooking" blob written around a login redirect).
type snapshot struct {
	Draft Draft `json:"draft"`
	Step  int   `json:"step"`
}

func (f *Flow) Snapshot() ([]byte, error) {
	return json.Marshal(snapshot{Draft: f.Draft, Step: f.Step})
}

// Restore replaces the draft and step from a snapshot. Errors and touched
// flags intentionally start clean; the resumed wizard revalidates on the next
// navigation.
func (f *Flow) Restore(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("restore booking draft: %w", err)
	}
	f.Draft = s.Draft
	f.Step = clampStep(s.Step)
	f.Errors = map[string]string{}
	f.Touched = map[string]bool{}
	f.Loading = false
	return nil
}

func (f *Flow) now() time.Time {
	if f.today != nil {
		return f.today()
	}
	return time.Now()
}
