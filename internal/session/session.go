package session

import (
	"context"
	"errors"
	"time"

	"stayfront/pkg/backendapi"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is the server-side stand-in for what the original browser client
// kept in local storage: the token pair, the signed-in user, and the
// transient pending-booking snapshot used to resume the wizard after a login
// redirect.
type Session struct {
	ID           string
	Token        string
	RefreshToken string

	UserID    string
	UserEmail string
	UserName  string
	UserRole  string

	// PendingBooking is an opaque wizard snapshot (JSON), empty when no
	// booking is being resumed.
	PendingBooking []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Store persists sessions. Implementations: in-memory (dev, tests) and
// Postgres. The interface is deliberately small so the backing can be swapped
// without touching call sites.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// credentialStore adapts one session row to the backend client's credential
// interface, so a token refreshed mid-request lands back in the session.
type credentialStore struct {
	store Store
	id    string
}

// Credentials exposes a session's token pair to the backend API client.
func Credentials(store Store, id string) backendapi.CredentialStore {
	return &credentialStore{store: store, id: id}
}

func (c *credentialStore) Credentials(ctx context.Context) (backendapi.Credentials, error) {
	s, err := c.store.Get(ctx, c.id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return backendapi.Credentials{}, nil
		}
		return backendapi.Credentials{}, err
	}
	return backendapi.Credentials{Token: s.Token, RefreshToken: s.RefreshToken}, nil
}

func (c *credentialStore) SetCredentials(ctx context.Context, creds backendapi.Credentials) error {
	s, err := c.store.Get(ctx, c.id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		s = &Session{ID: c.id}
	}
	s.Token = creds.Token
	s.RefreshToken = creds.RefreshToken
	return c.store.Put(ctx, s)
}

func (c *credentialStore) ClearCredentials(ctx context.Context) error {
	s, err := c.store.Get(ctx, c.id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	s.Token = ""
	s.RefreshToken = ""
	s.UserID = ""
	s.UserEmail = ""
	s.UserName = ""
	s.UserRole = ""
	return c.store.Put(ctx, s)
}
