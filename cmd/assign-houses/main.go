// Command assign-houses assigns every active employee to every house.
// Pairs that already exist are skipped, so the run is safe to repeat.
//
// Usage:
//
//	assign-houses
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ellishaven/careops-backend/internal/adapter/postgres"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/assignment"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/employee"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/house"
	"github.com/ellishaven/careops-backend/internal/app"
	"github.com/ellishaven/careops-backend/internal/config"
	"github.com/ellishaven/careops-backend/internal/service/staffing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := staffing.NewService(logger, house.New(pool), employee.New(pool), assignment.New(pool))

	fmt.Println("Assigning all active employees to all houses...")

	report, err := svc.AssignAll(ctx)
	if err != nil {
		log.Fatalf("assignment run failed: %v", err)
	}

	for _, f := range report.Failures {
		fmt.Printf("  FAILED: %s -> %s: %v\n", f.EmployeeName, f.HouseName, f.Err)
	}

	fmt.Printf("Done. Created %d assignments, skipped %d existing, %d failed.\n",
		report.Created, report.Skipped, len(report.Failures))

	if len(report.Failures) > 0 {
		os.Exit(1)
	}
}
