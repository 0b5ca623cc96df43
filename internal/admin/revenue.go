package admin

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"stayfront/internal/booking"
	"stayfront/pkg/backendapi"
)

// RevenueSummary aggregates a fetched page of bookings for the admin
// dashboard. Commission and cross-page aggregation are backend concerns; this
// only totals what is on screen.
type RevenueSummary struct {
	Bookings      int             `json:"bookings"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	PaidTotal     decimal.Decimal `json:"paidTotal"`
	RefundedTotal decimal.Decimal `json:"refundedTotal"`
	PendingTotal  decimal.Decimal `json:"pendingTotal"`
}

func Summarize(items []backendapi.Booking) RevenueSummary {
	s := RevenueSummary{
		GrossTotal:    decimal.Zero,
		PaidTotal:     decimal.Zero,
		RefundedTotal: decimal.Zero,
		PendingTotal:  decimal.Zero,
	}
	for _, b := range items {
		// Cancelled bookings don't count toward gross.
		switch booking.Status(b.Status) {
		case booking.StatusCancelled, booking.StatusCancelledByGuest, booking.StatusCancelledByHost:
			continue
		}
		s.Bookings++
		s.GrossTotal = s.GrossTotal.Add(b.TotalAmount)

		switch booking.PaymentStatus(b.PaymentStatus) {
		case booking.PaymentPaid:
			s.PaidTotal = s.PaidTotal.Add(b.TotalAmount)
		case booking.PaymentRefunded, booking.PaymentPartiallyRefunded:
			s.RefundedTotal = s.RefundedTotal.Add(b.TotalAmount)
		case booking.PaymentPending, booking.PaymentRefundPending:
			s.PendingTotal = s.PendingTotal.Add(b.TotalAmount)
		}
	}
	return s
}

// SortBookings orders an already-fetched page in place. Keys mirror the
// sortable table columns; unknown keys leave the server order untouched.
// desc flips the comparison.
func SortBookings(items []backendapi.Booking, key string, desc bool) {
	var less func(a, b backendapi.Booking) bool

	switch strings.ToLower(key) {
	case "checkin", "checkindate":
		less = func(a, b backendapi.Booking) bool { return a.CheckInDate < b.CheckInDate }
	case "checkout", "checkoutdate":
		less = func(a, b backendapi.Booking) bool { return a.CheckOutDate < b.CheckOutDate }
	case "total", "totalamount":
		less = func(a, b backendapi.Booking) bool { return a.TotalAmount.LessThan(b.TotalAmount) }
	case "status":
		less = func(a, b backendapi.Booking) bool { return a.Status < b.Status }
	case "hotel", "hotelname":
		less = func(a, b backendapi.Booking) bool { return a.HotelName < b.HotelName }
	case "created", "createdat":
		less = func(a, b backendapi.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
