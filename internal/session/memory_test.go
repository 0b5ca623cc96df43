package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayfront/pkg/backendapi"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s := &Session{ID: "s-1", Token: "tok", RefreshToken: "ref"}
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Token != "tok" || got.RefreshToken != "ref" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps set")
	}

	// Returned sessions are copies; mutating one must not leak into the store.
	got.Token = "mutated"
	again, _ := store.Get(ctx, "s-1")
	if again.Token != "tok" {
		t.Fatalf("store leaked a shared pointer")
	}

	if err := store.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_PutPreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := &Session{ID: "s-1"}
	_ = store.Put(ctx, s)
	first, _ := store.Get(ctx, "s-1")

	update := &Session{ID: "s-1", Token: "tok"}
	_ = store.Put(ctx, update)
	second, _ := store.Get(ctx, "s-1")

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected created_at preserved, got %v then %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestMemoryStore_PurgeIdle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Put(ctx, &Session{ID: "old"})

	// Backdate by writing directly.
	store.mu.Lock()
	s := store.sessions["old"]
	s.UpdatedAt = time.Now().Add(-48 * time.Hour)
	store.sessions["old"] = s
	store.mu.Unlock()

	_ = store.Put(ctx, &Session{ID: "fresh"})

	if n := store.PurgeIdle(24 * time.Hour); n != 1 {
		t.Fatalf("expected 1 purged, got %d", n)
	}
	if _, err := store.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session must survive: %v", err)
	}
}

func TestCredentialStore_RoundTripAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Put(ctx, &Session{ID: "s-1", Token: "tok", RefreshToken: "ref", UserID: "u-1", UserEmail: "a@b.c"})

	creds := Credentials(store, "s-1")

	got, err := creds.Credentials(ctx)
	if err != nil {
		t.Fatalf("credentials: %v", err)
	}
	if got.Token != "tok" || got.RefreshToken != "ref" {
		t.Fatalf("unexpected creds: %+v", got)
	}

	if err := creds.SetCredentials(ctx, backendapi.Credentials{Token: "tok-2", RefreshToken: "ref-2"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	s, _ := store.Get(ctx, "s-1")
	if s.Token != "tok-2" || s.RefreshToken != "ref-2" {
		t.Fatalf("refresh did not land in the session: %+v", s)
	}

	if err := creds.ClearCredentials(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s, _ = store.Get(ctx, "s-1")
	if s.Token != "" || s.RefreshToken != "" || s.UserID != "" {
		t.Fatalf("expected credentials and user wiped, got %+v", s)
	}
}

func TestCredentialStore_UnknownSessionIsAnonymous(t *testing.T) {
	ctx := context.Background()
	creds := Credentials(NewMemoryStore(), "nope")

	got, err := creds.Credentials(ctx)
	if err != nil {
		t.Fatalf("expected anonymous credentials, got error %v", err)
	}
	if got.Token != "" {
		t.Fatalf("expected empty token, got %q", got.Token)
	}
	if err := creds.ClearCredentials(ctx); err != nil {
		t.Fatalf("clearing a missing session must be a no-op: %v", err)
	}
}
