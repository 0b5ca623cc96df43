package api

import (
	"net/http"
	"sync"
	"time"

	"stayfront/internal/session"
	"stayfront/pkg/backendapi"
	"stayfront/pkg/config"
)

// BackendClients hands out one backend client per session. Reusing the
// client across requests of the same session is what makes the
// refresh-once logic shared: concurrent 401s from one browser trigger a
// single /auth/refresh, not one each.
type BackendClients struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store

	mu      sync.Mutex
	clients map[string]*backendapi.Client
}

func NewBackendClients(cfg config.Config, store session.Store) *BackendClients {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &BackendClients{
		baseURL:    cfg.Backend.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		clients:    make(map[string]*backendapi.Client),
	}
}

func (b *BackendClients) For(sessionID string) *backendapi.Client {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.clients[sessionID]; ok {
		return c
	}
	// Crude bound; session TTL expiry makes most entries dead weight anyway.
	if len(b.clients) > 10000 {
		b.clients = make(map[string]*backendapi.Client)
	}
	c := backendapi.New(b.baseURL, session.Credentials(b.store, sessionID))
	c.HTTPClient = b.httpClient
	b.clients[sessionID] = c
	return c
}
