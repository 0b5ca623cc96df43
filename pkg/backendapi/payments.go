package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type PaymentURLResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// CreatePaymentURL asks the backend for a VNPay redirect URL for a booking.
// The gateway only hands the URL to the browser; the redirect round-trip and
// the gateway callback are entirely backend-owned.
func (c *Client) CreatePaymentURL(ctx context.Context, bookingID, returnURL string) (string, error) {
	if bookingID == "" {
		return "", fmt.Errorf("missing booking id")
	}
	body := map[string]string{"bookingId": bookingID}
	if returnURL != "" {
		body["returnUrl"] = returnURL
	}
	var out PaymentURLResponse
	if _, err := c.do(ctx, http.MethodPost, "/payments/vnpay/url", nil, body, &out); err != nil {
		return "", err
	}
	if out.PaymentURL == "" {
		return "", fmt.Errorf("payment url response was empty")
	}
	return out.PaymentURL, nil
}

type PaymentStatusResponse struct {
	BookingID     string `json:"bookingId"`
	PaymentStatus string `json:"paymentStatus"`
}

func (c *Client) PaymentStatus(ctx context.Context, bookingID string) (*PaymentStatusResponse, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("missing booking id")
	}
	var out PaymentStatusResponse
	if _, err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(bookingID)+"/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
