package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type memStore struct {
	mu    sync.Mutex
	creds Credentials
}

func (s *memStore) Credentials(ctx context.Context) (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *memStore) SetCredentials(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

func (s *memStore) ClearCredentials(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1", RefreshToken: "ref-1"}}
	c := New(srv.URL, store)

	if _, err := c.do(context.Background(), http.MethodGet, "/bookings/my", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestDo_RefreshAndRetryOn401(t *testing.T) {
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls++
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refreshToken"] != "ref-1" {
				t.Errorf("expected refresh token ref-1, got %q", body["refreshToken"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-2", "refreshToken": "ref-2"})
		default:
			if r.Header.Get("Authorization") == "Bearer tok-2" {
				_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1", RefreshToken: "ref-1"}}
	c := New(srv.URL, store)

	status, err := c.do(context.Background(), http.MethodGet, "/bookings/my", nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200 after refresh, got %d", status)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh call, got %d", refreshCalls)
	}

	creds, _ := store.Credentials(context.Background())
	if creds.Token != "tok-2" || creds.RefreshToken != "ref-2" {
		t.Fatalf("expected rotated credentials stored, got %+v", creds)
	}
}

func TestDo_RefreshFailureClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1", RefreshToken: "ref-1"}}
	c := New(srv.URL, store)

	_, err := c.do(context.Background(), http.MethodGet, "/bookings/my", nil, nil, nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	creds, _ := store.Credentials(context.Background())
	if creds.Token != "" || creds.RefreshToken != "" {
		t.Fatalf("expected credentials cleared, got %+v", creds)
	}
}

func TestDo_NoRefreshTokenFailsWithoutRefreshCall(t *testing.T) {
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls++
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1"}}
	c := New(srv.URL, store)

	_, err := c.do(context.Background(), http.MethodGet, "/bookings/my", nil, nil, nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if refreshCalls != 0 {
		t.Fatalf("expected no refresh attempt without a refresh token, got %d", refreshCalls)
	}
}

func TestRefresh_SecondCallerReusesInFlightResult(t *testing.T) {
	refreshCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshCalls++
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-2"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1", RefreshToken: "ref-1"}}
	c := New(srv.URL, store)

	// Two callers observed the same generation before their 401s.
	creds, err := c.refresh(context.Background(), 0)
	if err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if creds.Token != "tok-2" {
		t.Fatalf("expected tok-2, got %q", creds.Token)
	}
	// Refresh token was not rotated; the old one must be retained.
	if creds.RefreshToken != "ref-1" {
		t.Fatalf("expected retained refresh token, got %q", creds.RefreshToken)
	}

	creds, err = c.refresh(context.Background(), 0)
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if creds.Token != "tok-2" {
		t.Fatalf("expected stored tok-2 reused, got %q", creds.Token)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected one network refresh shared by both callers, got %d", refreshCalls)
	}
}

func TestDo_DecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":5016,"message":"Booking existed"}}`))
	}))
	defer srv.Close()

	store := &memStore{creds: Credentials{Token: "tok-1", RefreshToken: "ref-1"}}
	c := New(srv.URL, store)

	_, err := c.doPublic(context.Background(), http.MethodPost, "/bookings", nil, map[string]string{}, nil)
	var ae *APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.Code != 5016 || ae.Status != http.StatusConflict {
		t.Fatalf("unexpected apierror: %+v", ae)
	}
}
