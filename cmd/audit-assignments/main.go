// Command audit-assignments prints the house assignments of every
// employee, flagging employees with none, followed by summary counts.
// Read-only; safe to run at any time.
//
// Usage:
//
//	audit-assignments
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := staffing.NewService(logger, house.New(pool), employee.New(pool), assignment.New(pool))

	report, err := svc.Coverage(ctx)
	if err != nil {
		log.Fatalf("coverage report failed: %v", err)
	}

	for _, e := range report.Employees {
		if len(e.HouseNames) == 0 {
			fmt.Printf("%s: NO HOUSES ASSIGNED\n", e.EmployeeName)
			continue
		}
		fmt.Printf("%s: %s\n", e.EmployeeName, strings.Join(e.HouseNames, ", "))
	}

	fmt.Printf("\n%d employees total, %d with assignments, %d without.\n",
		report.TotalEmployees, report.WithAssignments, report.WithoutAssignments)
}
