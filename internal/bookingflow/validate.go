package bookingflow

import (
	"strings"
	"time"
)

// ValidateStep checks one wizard step against the draft and returns a
// field→message map, empty when the step is valid. It is a pure function:
// same draft, same step, same clock ⇒ same result, and the draft is never
// mutated. Failures are data, not errors; nothing here panics or throws.
func ValidateStep(d Draft, step int, today time.Time) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepReview:
		validateReview(d, today, errs)
	case StepGuestInfo:
		validateGuestInfo(d, errs)
	case StepPayment:
		validatePayment(d, errs)
	case StepConfirm:
		// Final gate: re-run the stay details and the payment choice. Guest
		// identity comes from the session in the canonical flow, so step 2
		// is not repeated here.
		validateReview(d, today, errs)
		validatePayment(d, errs)
	}

	return errs
}

func validateReview(d Draft, today time.Time, errs map[string]string) {
	if strings.TrimSpace(d.HotelID) == "" {
		errs["hotelId"] = "Please select a hotel"
	}
	if strings.TrimSpace(d.RoomTypeID) == "" {
		errs["roomTypeId"] = "Please select a room type"
	}

	validateDates(d, today, errs)

	if d.Guests < 1 {
		errs["guests"] = "At least one guest is required"
	} else if d.MaxOccupancy > 0 && d.Guests > d.MaxOccupancy {
		errs["guests"] = "Number of guests exceeds the room capacity"
	}

	total := d.TotalAmount
	if !total.IsPositive() {
		total = d.Total()
	}
	if !total.IsPositive() {
		errs["totalAmount"] = "Total amount must be greater than zero"
	}
}

func validateDates(d Draft, today time.Time, errs map[string]string) {
	if d.CheckInDate == "" {
		errs["checkInDate"] = "Check-in date is required"
	}
	if d.CheckOutDate == "" {
		errs["checkOutDate"] = "Check-out date is required"
	}
	if errs["checkInDate"] != "" || errs["checkOutDate"] != "" {
		return
	}

	in, err := time.Parse(DateFormat, d.CheckInDate)
	if err != nil {
		errs["checkInDate"] = "Check-in date is not a valid date"
		return
	}
	out, err := time.Parse(DateFormat, d.CheckOutDate)
	if err != nil {
		errs["checkOutDate"] = "Check-out date is not a valid date"
		return
	}

	// Compare on the calendar day, not the instant: booking for "today" is
	// fine at 23:59.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(day) {
		errs["checkInDate"] = "Check-in date cannot be in the past"
	}
	if !out.After(in) {
		errs["checkOutDate"] = "Check-out date must be after check-in date"
		return
	}
	if nights := int(out.Sub(in).Hours() / 24); nights > MaxStayNights {
		errs["checkOutDate"] = "Stays longer than 30 nights cannot be booked online"
	}
}

func validateGuestInfo(d Draft, errs map[string]string) {
	if strings.TrimSpace(d.GuestName) == "" {
		errs["guestName"] = "Guest name is required"
	}
	email := strings.TrimSpace(d.GuestEmail)
	if email == "" {
		errs["guestEmail"] = "Email is required"
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		errs["guestEmail"] = "Email address is not valid"
	}
	if len(d.SpecialRequests) > MaxSpecialRequestsLen {
		errs["specialRequests"] = "Special requests must be 1000 characters or fewer"
	}
}

func validatePayment(d Draft, errs map[string]string) {
	if d.PaymentMethod == "" {
		errs["paymentMethod"] = "Please select a payment method"
	} else if !paymentMethodAllowed(d.PaymentMethod) {
		errs["paymentMethod"] = "This payment method is not available"
	}
}
