package backendapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

type VoucherResult struct {
	Code           string          `json:"code"`
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
	Message        string          `json:"message,omitempty"`
}

// ValidateVoucher checks a voucher code against a booking total. The backend
// owns all discount rules; the result is display-only until the code is sent
// with the create-booking request.
func (c *Client) ValidateVoucher(ctx context.Context, code string, total decimal.Decimal) (*VoucherResult, error) {
	if code == "" {
		return nil, fmt.Errorf("missing voucher code")
	}
	body := map[string]any{"code": code, "totalAmount": total}
	var out VoucherResult
	if _, err := c.do(ctx, http.MethodPost, "/vouchers/validate", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
