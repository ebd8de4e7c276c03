// Package app wires configuration, logging, storage, services, and the
// HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ellishaven/careops-backend/internal/adapter/postgres"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/assignment"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/audit"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/compliance"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/employee"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/house"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/notification"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/token"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/user"
	jwtauth "github.com/ellishaven/careops-backend/internal/auth"
	"github.com/ellishaven/careops-backend/internal/config"
	authsvc "github.com/ellishaven/careops-backend/internal/service/auth"
	compliancesvc "github.com/ellishaven/careops-backend/internal/service/compliance"
	notificationsvc "github.com/ellishaven/careops-backend/internal/service/notification"
	staffingsvc "github.com/ellishaven/careops-backend/internal/service/staffing"
	"github.com/ellishaven/careops-backend/internal/transport/middleware"
	"github.com/ellishaven/careops-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	auditRepo := audit.New(pool)
	complianceRepo := compliance.New(pool)
	notificationRepo := notification.New(pool)
	houseRepo := house.New(pool)
	employeeRepo := employee.New(pool)
	assignmentRepo := assignment.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtMgr := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, auditRepo, txm, jwtMgr, cfg.Auth)
	complianceService := compliancesvc.NewService(logger, complianceRepo, auditRepo)
	notificationService := notificationsvc.NewService(logger, notificationRepo)
	staffingService := staffingsvc.NewService(logger, houseRepo, employeeRepo, assignmentRepo)

	mux := rest.NewRouter(rest.Handlers{
		Auth:         rest.NewAuthHandler(authService, logger),
		Compliance:   rest.NewComplianceHandler(complianceService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Staffing:     rest.NewStaffingHandler(staffingService, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
