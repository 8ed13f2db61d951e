package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/config"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "routes-test"})
	kv := kvstore.NewMemory()

	store, err := notifications.NewStore(context.Background(), notifications.StoreParams{Logger: logg, KV: kv})
	if err != nil {
		t.Fatalf("construct store: %v", err)
	}
	mgr, err := settings.NewManager(settings.ManagerParams{Logger: logg, KV: kv})
	if err != nil {
		t.Fatalf("construct manager: %v", err)
	}

	return NewRouter(RouterParams{
		Config:        &config.Config{App: config.AppConfig{Env: "test"}},
		Logger:        logg,
		Notifications: store,
		Settings:      mgr,
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status %d", rec.Code)
	}
	if env := rec.Header().Get("X-Rm8-Env"); env != "test" {
		t.Fatalf("env header %q", env)
	}
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("settings status %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data settings.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data != settings.Defaults() {
		t.Fatalf("expected defaults, got %+v", payload.Data)
	}
}

func TestUpdateSettingsPartialPatch(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"emailNotifications":true,"quietHours":{"enabled":true}}`)
	req := httptest.NewRequest(http.MethodPut, "/api/settings", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data settings.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Data.EmailNotifications || !payload.Data.QuietHours.Enabled {
		t.Fatalf("patch not applied: %+v", payload.Data)
	}
	if payload.Data.QuietHours.Start != "22:00" {
		t.Fatalf("unpatched quiet hours sub-field should keep its default, got %+v", payload.Data.QuietHours)
	}
}

func TestListNotificationsEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("notifications status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty log should serialize as [], got %s", rec.Body.String())
	}
}

func TestMarkNotificationReadRejectsBadID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notifications/not-a-uuid/read", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", rec.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
