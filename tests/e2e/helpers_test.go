//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ellishaven/careops-backend/internal/adapter/postgres"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/assignment"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/audit"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/compliance"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/employee"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/house"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/notification"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/testhelper"
	"github.com/ellishaven/careops-backend/internal/adapter/postgres/token"
	userrepo "github.com/ellishaven/careops-backend/internal/adapter/postgres/user"
	authpkg "github.com/ellishaven/careops-backend/internal/auth"
	"github.com/ellishaven/careops-backend/internal/config"
	"github.com/ellishaven/careops-backend/internal/domain"
	authsvc "github.com/ellishaven/careops-backend/internal/service/auth"
	compliancesvc "github.com/ellishaven/careops-backend/internal/service/compliance"
	notificationsvc "github.com/ellishaven/careops-backend/internal/service/notification"
	staffingsvc "github.com/ellishaven/careops-backend/internal/service/staffing"
	"github.com/ellishaven/careops-backend/internal/transport/middleware"
	"github.com/ellishaven/careops-backend/internal/transport/rest"
)

const testPassword = "correct-horse-battery"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := token.New(pool)
	auditRepo := audit.New(pool)
	complianceRepo := compliance.New(pool)
	notificationRepo := notification.New(pool)
	houseRepo := house.New(pool)
	employeeRepo := employee.New(pool)
	assignmentRepo := assignment.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, auditRepo, txm, jwtMgr,
		config.AuthConfig{
			JWTSecret:       jwtSecret,
			JWTIssuer:       "test-issuer",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
	)
	complianceService := compliancesvc.NewService(logger, complianceRepo, auditRepo)
	notificationService := notificationsvc.NewService(logger, notificationRepo)
	staffingService := staffingsvc.NewService(logger, houseRepo, employeeRepo, assignmentRepo)

	mux := rest.NewRouter(rest.Handlers{
		Auth:         rest.NewAuthHandler(authService, logger),
		Compliance:   rest.NewComplianceHandler(complianceService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Staffing:     rest.NewStaffingHandler(staffingService, logger),
		Health:       rest.NewHealthHandler(pool, "e2e"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// seedLoginUser inserts a user whose password hash matches testPassword.
func (ts *testServer) seedLoginUser(t *testing.T, role domain.UserRole) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := &domain.User{
		ID:           uuid.New(),
		Role:         role,
		PasswordHash: string(hash),
		Name:         "E2E User",
	}
	u.Email = fmt.Sprintf("e2e-%s@example.com", u.ID)
	u.Username = fmt.Sprintf("e2e-%s", u.ID)

	const q = `
INSERT INTO users (id, email, username, name, role, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = ts.Pool.Exec(context.Background(), q,
		u.ID, u.Email, u.Username, u.Name, string(u.Role), u.PasswordHash)
	require.NoError(t, err)

	return u
}

// login authenticates via the API and returns access and refresh tokens.
func (ts *testServer) login(t *testing.T, email string) (access, refresh string) {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	access, _ = body["accessToken"].(string)
	refresh, _ = body["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

// doJSON sends a request with an optional JSON payload and bearer token,
// returning the status code and decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Middleware rejections are plain text; everything else is JSON.
	// List endpoints return arrays, wrapped under "items" for uniform access.
	var body map[string]any
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return resp.StatusCode, nil
	}
	if len(raw) > 0 && raw[0] == '[' {
		var items []any
		require.NoError(t, json.Unmarshal(raw, &items))
		body = map[string]any{"items": items}
	} else {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}
