package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			CORSAllowOrigin: "*",
		},
		Security: config.SecurityConfig{
			JWTSecret: "test-jwt-secret",
			JWTExpiry: time.Hour,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 10},
		AppURL:    "http://localhost:3000",
	}
}

func newTestApp(t *testing.T, cfg *config.Config, opts ...AppOption) *App {
	t.Helper()
	opts = append([]AppOption{WithLogger(logger.NewNoopLogger())}, opts...)
	return NewApp(cfg, opts...).(*App)
}

func initAll(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.InitDB())
	require.NoError(t, a.InitMailer())
	require.NoError(t, a.InitRepositories())
	require.NoError(t, a.InitServices())
	require.NoError(t, a.InitHandlers())
	t.Cleanup(func() {
		if a.limiter != nil {
			a.limiter.Stop()
		}
	})
}

func TestNewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMailer := mocks.NewMockMailer(ctrl)
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newTestApp(t, createTestConfig(), WithMockMailer(mockMailer), WithMockDB(db))

	assert.Equal(t, mockMailer, a.GetMailer())
	assert.Equal(t, db, a.GetDB())
	assert.NotNil(t, a.GetMux())
	assert.NotNil(t, a.GetLogger())
	assert.Equal(t, "test", a.GetConfig().Environment)
	assert.NoError(t, a.GetShutdownContext().Err())
}

func TestAppInitDB_NotConfigured(t *testing.T) {
	a := newTestApp(t, createTestConfig())

	require.NoError(t, a.InitDB())
	assert.Nil(t, a.GetDB())
}

func TestAppInitDB_KeepsInjectedDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := createTestConfig()
	cfg.Database.URL = "postgres://unused"
	a := newTestApp(t, cfg, WithMockDB(db))

	require.NoError(t, a.InitDB())
	assert.Same(t, db, a.GetDB())
}

func TestAppInitMailer(t *testing.T) {
	t.Run("console fallback", func(t *testing.T) {
		a := newTestApp(t, createTestConfig())
		require.NoError(t, a.InitMailer())
		assert.Equal(t, "console", a.GetMailer().Provider())
	})

	t.Run("provider without credentials", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Email.Provider = "sendgrid"
		a := newTestApp(t, cfg)
		require.NoError(t, a.InitMailer())
		assert.Equal(t, "console", a.GetMailer().Provider())
	})

	t.Run("mock kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockMailer := mocks.NewMockMailer(ctrl)
		a := newTestApp(t, createTestConfig(), WithMockMailer(mockMailer))
		require.NoError(t, a.InitMailer())
		assert.Equal(t, mockMailer, a.GetMailer())
	})
}

func TestAppInitServices(t *testing.T) {
	t.Run("requires mailer", func(t *testing.T) {
		a := newTestApp(t, createTestConfig())
		require.NoError(t, a.InitRepositories())
		err := a.InitServices()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mailer must be initialized")
	})

	t.Run("requires jwt secret", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Security.JWTSecret = ""
		a := newTestApp(t, cfg)
		require.NoError(t, a.InitMailer())
		require.NoError(t, a.InitRepositories())
		err := a.InitServices()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create credential service")
	})
}

func TestAppRoutes_WithoutDatabase(t *testing.T) {
	a := newTestApp(t, createTestConfig())
	initAll(t, a)
	handler := a.Handler()

	t.Run("health reports missing configuration", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var report map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, "error", report["status"])
		assert.Equal(t, "error", report["checks"].(map[string]interface{})["environment"])
	})

	t.Run("database routes answer 503", func(t *testing.T) {
		body := strings.NewReader(`{"email":"a@b.com","password":"pw123456","firstName":"Ann","lastName":"Lee"}`)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/signup", body))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Database configuration error. Please contact support."}`, w.Body.String())
	})

	t.Run("cors headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/contacts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAppRoutes_WithDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a := newTestApp(t, createTestConfig(), WithMockDB(db))
	initAll(t, a)
	handler := a.Handler()

	t.Run("health ok", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("health connectivity failure", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection refused"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("tenant routes require a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contacts?workspaceId=w1", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields never reach the database", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"email":"a@b.com"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGracefulShutdownMiddleware(t *testing.T) {
	a := newTestApp(t, createTestConfig())

	var seen int64
	handler := a.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = a.GetActiveRequestCount()
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), seen)
	assert.Equal(t, int64(0), a.GetActiveRequestCount())

	a.shutdownCancel()
	assert.True(t, a.isShuttingDown())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAppShutdown_WithoutServer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	a := newTestApp(t, createTestConfig(), WithMockDB(db))

	require.NoError(t, a.Shutdown(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Error(t, a.GetShutdownContext().Err())
}

func TestAppStartAndShutdown(t *testing.T) {
	a := newTestApp(t, createTestConfig())
	initAll(t, a)
	a.SetShutdownTimeout(2 * time.Second)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Start()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.True(t, a.WaitForServerStart(ctx))
	assert.True(t, a.IsServerCreated())

	require.NoError(t, a.Shutdown(context.Background()))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
