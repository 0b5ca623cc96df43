package backendapi

import (
	"context"
	"fmt"
	"net/http"
)

type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}

// RequestUpload asks the backend for a presigned upload slot (review photos,
// host hotel images). The actual byte transfer goes straight to the storage
// provider, not through this client.
func (c *Client) RequestUpload(ctx context.Context, filename, contentType string) (*UploadTicket, error) {
	if filename == "" {
		return nil, fmt.Errorf("missing filename")
	}
	body := map[string]string{"filename": filename, "contentType": contentType}
	var out UploadTicket
	if _, err := c.do(ctx, http.MethodPost, "/uploads", nil, body, &out); err != nil {
		return nil, err
	}
	if out.UploadURL == "" {
		return nil, fmt.Errorf("upload ticket was empty")
	}
	return &out, nil
}
