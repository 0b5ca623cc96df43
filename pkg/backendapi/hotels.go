package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	Description string          `json:"description,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	ReviewCount int             `json:"reviewCount,omitempty"`
	MinPrice    decimal.Decimal `json:"minPrice,omitempty"`
	ImageURLs   []string        `json:"imageUrls,omitempty"`
}

type RoomType struct {
	ID            string          `json:"id"`
	HotelID       string          `json:"hotelId"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	MaxOccupancy  int             `json:"maxOccupancy"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	TotalRooms    int             `json:"totalRooms,omitempty"`
	ImageURLs     []string        `json:"imageUrls,omitempty"`
}

type HotelListParams struct {
	City     string
	Search   string
	Page     int
	PageSize int
}

type HotelList struct {
	Items    []Hotel `json:"items"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

func (c *Client) Hotels(ctx context.Context, p HotelListParams) (*HotelList, error) {
	q := url.Values{}
	if p.City != "" {
		q.Set("city", p.City)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	var out HotelList
	if _, err := c.doPublic(ctx, http.MethodGet, "/hotels", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Hotel(ctx context.Context, id string) (*Hotel, error) {
	if id == "" {
		return nil, fmt.Errorf("missing hotel id")
	}
	var h Hotel
	if _, err := c.doPublic(ctx, http.MethodGet, "/hotels/"+url.PathEscape(id), nil, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) RoomTypes(ctx context.Context, hotelID string) ([]RoomType, error) {
	if hotelID == "" {
		return nil, fmt.Errorf("missing hotel id")
	}
	var out []RoomType
	if _, err := c.doPublic(ctx, http.MethodGet, "/hotels/"+url.PathEscape(hotelID)+"/room-types", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RoomType(ctx context.Context, id string) (*RoomType, error) {
	if id == "" {
		return nil, fmt.Errorf("missing room type id")
	}
	var rt RoomType
	if _, err := c.doPublic(ctx, http.MethodGet, "/room-types/"+url.PathEscape(id), nil, nil, &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}
