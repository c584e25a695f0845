//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shepherd-backend/internal/app"
	"github.com/heartmarshall/shepherd-backend/internal/auth"
	"github.com/heartmarshall/shepherd-backend/internal/config"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/transport/middleware"
)

const testPassword = "correct horse battery"

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	hasher *auth.Hasher
}

// testLogWriter forwards server logs to t.Log so they show up only on failure.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret-that-is-at-least-32-bytes-long",
			JWTIssuer:      "shepherd-e2e",
			AccessTokenTTL: time.Hour,
			CookieName:     "auth_token",
			BcryptCost:     4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		RateLimit: config.RateLimitConfig{
			LoginPerMinute:  1000,
			CleanupInterval: time.Minute,
		},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		hasher: auth.NewHasher(cfg.Auth.BcryptCost),
	}
}

// seedAccount stores a user with testPassword as its password.
func (ts *testServer) seedAccount(t *testing.T, role domain.UserRole) domain.User {
	t.Helper()

	hash, err := ts.hasher.Hash(testPassword)
	require.NoError(t, err)

	suffix := uuid.New().String()[:8]
	created, err := userrepo.New(ts.Pool).Create(context.Background(), &domain.User{
		Email:        string(role) + "-" + suffix + "@e2e.test",
		Name:         "E2E " + string(role) + " " + suffix,
		Role:         role,
		PasswordHash: &hash,
	})
	require.NoError(t, err)
	return *created
}

// login returns a bearer token for email.
func (ts *testServer) login(t *testing.T, email string) string {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var body struct {
		Token string `json:"token"`
	}
	resp.decode(t, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}
}
