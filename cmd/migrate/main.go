package main

import (
	"fmt"
	"os"

	"github.com/wanderpk/tour-booking-backend/internal/config"
	"github.com/wanderpk/tour-booking-backend/internal/db"
)

// Standalone migration runner for deploy pipelines that migrate before
// rolling the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := db.Migrate(cfg.MigrationsPath, cfg.DBDSN); err != nil {
		fmt.Fprintf(os.Stderr, "migrate failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("migrations applied")
}
