// migrate applies the sessions schema to the configured database. The web
// entrypoint runs migrations on boot when MIGRATIONS_PATH is set; this tool
// exists for running them by hand against a fresh database.
package main

import (
	"fmt"
	"os"

	"stayfront/pkg/config"
	"stayfront/pkg/db"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(2)
	}
	path := cfg.MigrationsPath
	if path == "" {
		path = "file://migrations"
	}

	if err := db.Migrate(path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied")
}
