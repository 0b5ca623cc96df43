package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfront/internal/httpapi"
	"stayfront/internal/session"
	"stayfront/pkg/config"
	"stayfront/pkg/db"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessions session.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.Open(ctx, cfg)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer pool.Close()

		if cfg.MigrationsPath != "" {
			if err := db.Migrate(cfg.MigrationsPath, cfg); err != nil {
				log.Fatalf("migrate: %v", err)
			}
		}

		store := session.NewPostgresStore(pool)
		sessions = store

		// Idle sessions (and their pending booking drafts) get swept hourly.
		go func() {
			ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
			t := time.NewTicker(time.Hour)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					if n, err := store.PurgeIdle(ctx, ttl); err != nil {
						log.Printf("session purge: %v", err)
					} else if n > 0 {
						log.Printf("purged %d idle sessions", n)
					}
				}
			}
		}()
	} else {
		log.Printf("DATABASE_URL not set; using in-memory sessions")
		sessions = session.NewMemoryStore()
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:      cfg,
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http listening on %s (backend %s)", cfg.HTTPAddr, cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}
