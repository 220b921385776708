//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localbiz-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/localbiz-backend/internal/app"
	"github.com/heartmarshall/localbiz-backend/internal/config"
	"github.com/heartmarshall/localbiz-backend/internal/notify"
)

const testPassword = "correct-horse-battery"

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Bus    *notify.Bus
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "e2e-secret-that-is-at-least-32-bytes-long",
			JWTIssuer:         "localbiz-e2e",
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   time.Hour,
			PasswordHashCost:  bcrypt.MinCost,
			MinPasswordLength: 8,
		},
		Listing: config.ListingConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Storage: config.StorageConfig{
			KeyPrefix:     "listings",
			MaxImageBytes: 1 << 20,
			AllowedTypes:  "image/jpeg,image/png,image/webp,image/gif",
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Log: config.LogConfig{Level: "debug", Format: "text"},
	}
}

// setupTestServer assembles the full application against a containerized
// PostgreSQL and an in-memory bucket.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// The image base URL needs the server address, so the handler is set
	// after the listener exists.
	var handler http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	store := blobstore.New(memblob.OpenBucket(nil), srv.URL+"/images")
	t.Cleanup(func() { _ = store.Close() })

	bus := notify.New(logger)
	api := app.NewAPI(testConfig(), logger, app.Deps{Pool: pool, Store: store, Bus: bus})
	t.Cleanup(api.Close)
	handler = api.Handler

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Bus: bus}
}

// do sends a JSON request and decodes a JSON object response. The returned
// map is nil for empty and non-JSON bodies.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
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
	if len(raw) == 0 || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	return resp.StatusCode, result
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

type session struct {
	AccessToken  string
	RefreshToken string
	AccountID    uuid.UUID
	Email        string
}

// register creates an account through the API and returns its session.
func (ts *testServer) register(t *testing.T, prefix string) session {
	t.Helper()

	email := uniqueEmail(prefix)
	status, body := ts.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)
	return sessionFrom(t, body, email)
}

// registerAdmin registers an account and promotes it directly in the
// database. Roles are resolved per request, so the issued token picks up
// the new role immediately.
func (ts *testServer) registerAdmin(t *testing.T) session {
	t.Helper()

	s := ts.register(t, "admin")
	_, err := ts.Pool.Exec(context.Background(),
		`UPDATE accounts SET role = 'admin' WHERE id = $1`, s.AccountID)
	require.NoError(t, err)
	return s
}

func sessionFrom(t *testing.T, body map[string]any, email string) session {
	t.Helper()

	account, ok := body["account"].(map[string]any)
	require.True(t, ok, "expected account object: %v", body)
	id, err := uuid.Parse(account["id"].(string))
	require.NoError(t, err)

	return session{
		AccessToken:  body["accessToken"].(string),
		RefreshToken: body["refreshToken"].(string),
		AccountID:    id,
		Email:        email,
	}
}

func sampleListing(name string) map[string]string {
	return map[string]string{
		"name":          name,
		"category":      "Cafe",
		"description":   "Espresso and pastries",
		"contactPerson": "Ann",
		"phone":         "+1 555 0100",
		"email":         "hello@example.com",
		"location":      "Main St 1",
	}
}

// listingIDs collects the ids of a listing page.
func listingIDs(t *testing.T, page map[string]any) []string {
	t.Helper()

	items, ok := page["listings"].([]any)
	require.True(t, ok, "expected listings array: %v", page)
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.(map[string]any)["id"].(string))
	}
	return ids
}

// auditActionsFor returns the actions recorded against one target, newest first.
func auditActionsFor(t *testing.T, ts *testServer, adminToken, targetID string) []string {
	t.Helper()

	status, page := ts.do(t, http.MethodGet, "/admin/audit-logs?limit=200", adminToken, nil)
	require.Equal(t, http.StatusOK, status, "audit-logs: %v", page)

	entries, ok := page["entries"].([]any)
	require.True(t, ok, "expected entries array: %v", page)

	var actions []string
	for _, e := range entries {
		entry := e.(map[string]any)
		if entry["targetId"] == targetID {
			actions = append(actions, entry["action"].(string))
		}
	}
	return actions
}
