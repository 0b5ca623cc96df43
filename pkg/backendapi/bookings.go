package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	HotelID         string          `json:"hotelId"`
	RoomTypeID      string          `json:"roomTypeId"`
	CheckInDate     string          `json:"checkInDate"`  // YYYY-MM-DD
	CheckOutDate    string          `json:"checkOutDate"` // YYYY-MM-DD
	Guests          int             `json:"guests"`
	TotalAmount     decimal.Decimal `json:"totalAmount"` // advisory; backend recomputes
	PaymentMethod   string          `json:"paymentMethod"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	VoucherCode     string          `json:"voucherCode,omitempty"`
}

type Booking struct {
	ID              string          `json:"id"`
	HotelID         string          `json:"hotelId"`
	HotelName       string          `json:"hotelName,omitempty"`
	RoomTypeID      string          `json:"roomTypeId"`
	RoomTypeName    string          `json:"roomTypeName,omitempty"`
	GuestName       string          `json:"guestName,omitempty"`
	GuestEmail      string          `json:"guestEmail,omitempty"`
	CheckInDate     string          `json:"checkInDate"`
	CheckOutDate    string          `json:"checkOutDate"`
	Guests          int             `json:"guests"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
}

type BookingList struct {
	Items    []Booking `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

type BookingListParams struct {
	Status   string
	Page     int
	PageSize int
}

func (p BookingListParams) query() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// CheckAvailability asks the backend whether the room type is free for the
// date range. Availability is computed server-side; the gateway never caches
// the answer because it can go stale the moment someone else books.
func (c *Client) CheckAvailability(ctx context.Context, roomTypeID, checkInDate, checkOutDate string) (bool, error) {
	q := url.Values{}
	q.Set("roomTypeId", roomTypeID)
	q.Set("checkInDate", checkInDate)
	q.Set("checkOutDate", checkOutDate)

	var out struct {
		Available bool `json:"available"`
	}
	if _, err := c.doPublic(ctx, http.MethodGet, "/bookings/check-availability", q, nil, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var b Booking
	if _, err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &b); err != nil {
		return nil, err
	}
	if b.ID == "" {
		return nil, fmt.Errorf("create booking returned empty id")
	}
	return &b, nil
}

func (c *Client) MyBookings(ctx context.Context, p BookingListParams) (*BookingList, error) {
	var out BookingList
	if _, err := c.do(ctx, http.MethodGet, "/bookings/my", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if _, err := c.do(ctx, http.MethodGet, "/bookings/my/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CancelMyBooking(ctx context.Context, id, reason string) (*Booking, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	var b Booking
	if _, err := c.do(ctx, http.MethodPatch, "/bookings/my/"+url.PathEscape(id)+"/cancel", nil, body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Host-scoped transitions. Each is a single fire-and-forget call; callers
// re-fetch the record afterwards rather than trusting a partial response.

func (c *Client) HostBookings(ctx context.Context, p BookingListParams) (*BookingList, error) {
	var out BookingList
	if _, err := c.do(ctx, http.MethodGet, "/bookings/host", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HostBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if _, err := c.do(ctx, http.MethodGet, "/bookings/host/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) HostConfirmBooking(ctx context.Context, id string) error {
	return c.hostTransition(ctx, id, "confirm")
}

func (c *Client) HostCancelBooking(ctx context.Context, id string) error {
	return c.hostTransition(ctx, id, "cancel")
}

func (c *Client) HostCompleteBooking(ctx context.Context, id string) error {
	return c.hostTransition(ctx, id, "complete")
}

func (c *Client) HostConfirmPayment(ctx context.Context, id string) error {
	return c.hostTransition(ctx, id, "confirm-payment")
}

func (c *Client) hostTransition(ctx context.Context, id, action string) error {
	if id == "" {
		return fmt.Errorf("missing booking id")
	}
	_, err := c.do(ctx, http.MethodPatch, "/bookings/host/"+url.PathEscape(id)+"/"+action, nil, nil, nil)
	return err
}

// Admin-scoped mutation. The backend validates every field; the gateway just
// relays whatever the admin dashboard sends.

type AdminUpdateBookingRequest struct {
	Status        string           `json:"status,omitempty"`
	PaymentStatus string           `json:"paymentStatus,omitempty"`
	CheckInDate   string           `json:"checkInDate,omitempty"`
	CheckOutDate  string           `json:"checkOutDate,omitempty"`
	Guests        int              `json:"guests,omitempty"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
}

func (c *Client) AdminBookings(ctx context.Context, p BookingListParams) (*BookingList, error) {
	var out BookingList
	if _, err := c.do(ctx, http.MethodGet, "/bookings/admin", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateBooking(ctx context.Context, id string, req AdminUpdateBookingRequest) (*Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("missing booking id")
	}
	var b Booking
	if _, err := c.do(ctx, http.MethodPut, "/bookings/admin/"+url.PathEscape(id), nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) AdminDeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing booking id")
	}
	_, err := c.do(ctx, http.MethodDelete, "/bookings/admin/"+url.PathEscape(id), nil, nil, nil)
	return err
}
