package bookingflow

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateFormat is the wire format for check-in/check-out dates.
	DateFormat = "2006-01-02"

	// MaxStayNights caps a single booking. Longer stays go through the
	// hotel directly.
	MaxStayNights = 30

	MaxSpecialRequestsLen = 1000
)

type PaymentMethod string

const (
	PayAtHotel   PaymentMethod = "PAY_AT_HOTEL"
	PayVNPay     PaymentMethod = "VNPAY"
	BankTransfer PaymentMethod = "BANK_TRANSFER"
)

// paymentMethods maps each method to whether it is currently offered.
// Bank transfer is wired through the backend but switched off until
// reconciliation is automated.
var paymentMethods = map[PaymentMethod]bool{
	PayAtHotel:   true,
	PayVNPay:     true,
	BankTransfer: false,
}

func AllowedPaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, 0, len(paymentMethods))
	for _, m := range []PaymentMethod{PayAtHotel, PayVNPay, BankTransfer} {
		if paymentMethods[m] {
			out = append(out, m)
		}
	}
	return out
}

func paymentMethodAllowed(m string) bool {
	return paymentMethods[PaymentMethod(m)]
}

// Draft is the in-progress booking: everything the wizard collects before
// submission. It only exists client-side; the backend sees it once, as a
// create request.
type Draft struct {
	HotelID      string `json:"hotelId"`
	RoomTypeID   string `json:"roomTypeId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       int    `json:"guests"`

	// MaxOccupancy mirrors the selected room type so the guests bound can be
	// checked locally. Zero means the room type hasn't been resolved yet.
	MaxOccupancy int `json:"maxOccupancy,omitempty"`

	PricePerNight decimal.Decimal `json:"pricePerNight"`
	// TotalAmount is advisory, shown to the user and sent with the request.
	// The backend recomputes the real total; this one is never trusted back.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	PaymentMethod   string `json:"paymentMethod"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	VoucherCode     string `json:"voucherCode,omitempty"`

	// Guest identity. Prefilled from the session in the canonical flow; only
	// free input (and therefore only validated) in the guest-checkout variant.
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

// Nights returns the stay length, or 0 when either date is missing/invalid.
func (d Draft) Nights() int {
	in, err := time.Parse(DateFormat, d.CheckInDate)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateFormat, d.CheckOutDate)
	if err != nil {
		return 0
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Total computes pricePerNight × nights for display. Advisory only.
func (d Draft) Total() decimal.Decimal {
	n := d.Nights()
	if n <= 0 {
		return decimal.Zero
	}
	return d.PricePerNight.Mul(decimal.NewFromInt(int64(n)))
}
