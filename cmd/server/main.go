// Command server runs the careops HTTP API.
//
// Configuration comes from environment variables (optionally a YAML
// config file, see internal/config). Requires DATABASE_DSN and
// AUTH_JWT_SECRET to be set.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ellishaven/careops-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
