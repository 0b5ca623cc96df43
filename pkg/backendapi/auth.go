package backendapi

import (
	"context"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"` // GUEST, HOST or ADMIN
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Login authenticates and stores the issued credentials. The returned user
// record is what the wizard uses to prefill guest info.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp LoginResponse
	_, err := c.doPublic(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login returned empty token")
	}
	if err := c.Creds.SetCredentials(ctx, Credentials{Token: resp.Token, RefreshToken: resp.RefreshToken}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout clears stored credentials. The server-side revocation is best
// effort; a dead session must not block the local sign-out.
func (c *Client) Logout(ctx context.Context) error {
	_, _ = c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	return c.Creds.ClearCredentials(ctx)
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if _, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
