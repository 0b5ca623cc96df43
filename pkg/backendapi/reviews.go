package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Review struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	BookingID string    `json:"bookingId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type CreateReviewRequest struct {
	HotelID   string `json:"hotelId"`
	BookingID string `json:"bookingId,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type ReviewList struct {
	Items    []Review `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
}

func (c *Client) HotelReviews(ctx context.Context, hotelID string, page, pageSize int) (*ReviewList, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("missing hotel id")
	}
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	var out ReviewList
	if _, err := c.doPublic(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID)+"/reviews", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	var rv Review
	if _, err := c.do(ctx, http.MethodPost, "/reviews", nil, req, &rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (c *Client) UpdateReview(ctx context.Context, id string, rating int, comment string) (*Review, error) {
	if id == "" {
		return nil, fmt.Errorf("missing review id")
	}
	body := map[string]any{"rating": rating, "comment": comment}
	var rv Review
	if _, err := c.do(ctx, http.MethodPut, "/reviews/"+url.PathEscape(id), nil, body, &rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("missing review id")
	}
	_, err := c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, nil, nil)
	return err
}
