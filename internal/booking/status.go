package booking

import "fmt"

type Status string

const (
	StatusPending          Status = "PENDING"
	StatusConfirmed        Status = "CONFIRMED"
	StatusCancelled        Status = "CANCELLED"
	StatusCancelledByGuest Status = "CANCELLED_BY_GUEST"
	StatusCancelledByHost  Status = "CANCELLED_BY_HOST"
	StatusCompleted        Status = "COMPLETED"
	StatusNoShow           Status = "NO_SHOW"
)

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "PENDING"
	PaymentPaid              PaymentStatus = "PAID"
	PaymentFailed            PaymentStatus = "FAILED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentRefundPending     PaymentStatus = "REFUND_PENDING"
	PaymentNone              PaymentStatus = "NO_PAYMENT"
	PaymentCancelled         PaymentStatus = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCancelledByGuest,
		StatusCancelledByHost, StatusCompleted, StatusNoShow:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded,
		PaymentPartiallyRefunded, PaymentRefundPending, PaymentNone, PaymentCancelled:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status: %s", s)
	}
}

// Badge is what the frontend renders next to a booking. Transitions are
// server-owned; the gateway only maps the current string to a visual style.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var statusBadges = map[Status]Badge{
	StatusPending:          {Label: "Pending", Icon: "clock", Color: "yellow"},
	StatusConfirmed:        {Label: "Confirmed", Icon: "check-circle", Color: "green"},
	StatusCancelled:        {Label: "Cancelled", Icon: "x-circle", Color: "red"},
	StatusCancelledByGuest: {Label: "Cancelled by guest", Icon: "x-circle", Color: "red"},
	StatusCancelledByHost:  {Label: "Cancelled by host", Icon: "x-circle", Color: "red"},
	StatusCompleted:        {Label: "Completed", Icon: "flag", Color: "blue"},
	StatusNoShow:           {Label: "No-show", Icon: "user-x", Color: "gray"},
}

var paymentBadges = map[PaymentStatus]Badge{
	PaymentPending:           {Label: "Payment pending", Icon: "clock", Color: "yellow"},
	PaymentPaid:              {Label: "Paid", Icon: "check-circle", Color: "green"},
	PaymentFailed:            {Label: "Payment failed", Icon: "alert-triangle", Color: "red"},
	PaymentRefunded:          {Label: "Refunded", Icon: "rotate-ccw", Color: "blue"},
	PaymentPartiallyRefunded: {Label: "Partially refunded", Icon: "rotate-ccw", Color: "blue"},
	PaymentRefundPending:     {Label: "Refund pending", Icon: "clock", Color: "yellow"},
	PaymentNone:              {Label: "No payment", Icon: "minus", Color: "gray"},
	PaymentCancelled:         {Label: "Payment cancelled", Icon: "x-circle", Color: "red"},
}

// StatusBadge maps any status string to its badge. Unknown strings degrade to
// the PENDING style instead of failing; the backend grows statuses faster
// than clients redeploy.
func StatusBadge(s string) Badge {
	if b, ok := statusBadges[Status(s)]; ok {
		return b
	}
	return statusBadges[StatusPending]
}

func PaymentStatusBadge(s string) Badge {
	if b, ok := paymentBadges[PaymentStatus(s)]; ok {
		return b
	}
	return paymentBadges[PaymentPending]
}
