//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/cache/redis"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/authmethod"
	categoryrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/category"
	commentrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/comment"
	itemrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/item"
	orderrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/order"
	profilerepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/profile"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/testhelper"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/token"
	userrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/user"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/storage/local"
	authpkg "github.com/bhagyarekha373/Reuse-Hub/internal/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
	"github.com/bhagyarekha373/Reuse-Hub/internal/metrics"
	authsvc "github.com/bhagyarekha373/Reuse-Hub/internal/service/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/category"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/comment"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/ordering"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/profile"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
	"github.com/bhagyarekha373/Reuse-Hub/internal/transport/rest"
)

const api = rest.APIPrefix

// pngBytes starts with the PNG signature so content sniffing accepts it.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *miniredis.Miniredis
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application backed by a real PostgreSQL
// container (shared via testhelper), an in-process Redis and a temp dir
// for uploaded images.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redis.New(client, "e2e:")

	store, err := local.New(t.TempDir(), "/media")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	sessions := session.RequestScoped{}

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-secret-at-least-32-chars-long!!",
		JWTIssuer:        "reuse-hub-e2e",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	}
	market := config.MarketConfig{
		CurrencySymbol:  "₹",
		FeaturedLimit:   8,
		DefaultPageSize: 50,
		MaxPageSize:     200,
		SanitizeMarkup:  true,
	}

	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	items := itemrepo.New(pool)
	categories := categoryrepo.New(pool)

	jwt := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, profiles, token.New(pool), authmethod.New(pool), tx, jwt, sessions, authCfg)
	mediaService := media.NewService(logger, store, sessions, collector, media.MaxImageBytes)
	catalogService := catalog.NewService(logger, items, categories, profiles, mediaService, tx, sessions, collector, market)

	handler := rest.NewRouter(&rest.RouterDeps{
		Logger:         logger,
		Version:        "e2e",
		Market:         market,
		MaxUploadBytes: media.MaxImageBytes,
		Tokens:         authService,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
		Media:          store.Handler(),
		DB:             pool,
		Cache:          cache,
		Auth:           authService,
		Items:          catalogService,
		Uploads:        mediaService,
		Orders:         ordering.NewService(logger, orderrepo.New(pool), items, sessions, collector),
		Profiles:       profile.NewService(logger, profiles, catalogService, sessions),
		Comments:       comment.NewService(logger, commentrepo.New(pool), sessions),
		Categories:     category.NewService(logger, categories, cache, time.Minute),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Redis: mr}
}

// do sends a request and decodes the JSON response into a map. body may
// be nil, a *formBody or any JSON-encodable value.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.doRaw(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return status, out
}

// doList is do for endpoints returning a JSON array.
func (ts *testServer) doList(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	status, raw := ts.doRaw(t, method, path, token, nil)
	var out []any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return status, out
}

func (ts *testServer) doRaw(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *formBody:
		reader, contentType = b.buf, b.contentType
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// signUp registers a fresh account and returns its access token and id.
func (ts *testServer) signUp(t *testing.T, name string) (string, string) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	status, body := ts.do(t, http.MethodPost, api+"/auth/signup", "", map[string]string{
		"email":    name + "-" + suffix + "@example.com",
		"username": name + "_" + suffix,
		"password": "Secret123",
	})
	require.Equal(t, http.StatusCreated, status, body)

	user := body["user"].(map[string]any)
	return body["accessToken"].(string), user["id"].(string)
}

// categoryID returns the id of a seeded category by name.
func (ts *testServer) categoryID(t *testing.T, name string) string {
	t.Helper()

	status, cats := ts.doList(t, http.MethodGet, api+"/categories", "")
	require.Equal(t, http.StatusOK, status)
	for _, c := range cats {
		cat := c.(map[string]any)
		if cat["name"] == name {
			return cat["id"].(string)
		}
	}
	t.Fatalf("category %q not seeded", name)
	return ""
}

type formBody struct {
	buf         *bytes.Buffer
	contentType string
}

func newForm(t *testing.T, fields map[string]string, image []byte, filename string) *formBody {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &formBody{buf: buf, contentType: mw.FormDataContentType()}
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	code, ok := body["code"].(string)
	require.True(t, ok, "expected error code in %v", body)
	return code
}
