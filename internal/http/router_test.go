package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autokursai/landing-api/internal/config"
	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/session"
)

// staticCities resolves every address to a fixed city.
type staticCities struct{ city string }

func (s staticCities) Resolve(ctx context.Context, ip string) string { return s.city }

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *session.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Visitor{}, &domain.Submission{}, &domain.SubmissionReceipt{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	store := session.NewMemory(time.Hour)
	cfg := config.Config{
		APIBasePath:   "/",
		AdminPassword: "s3cret",
		SessionTTL:    24 * time.Hour,
		ReceiptTTL:    24 * time.Hour,
	}

	r := gin.New()
	RegisterRoutes(r, db, store, staticCities{city: "Vilnius"}, cfg)
	return r, db, store
}

func do(r *gin.Engine, method, path, body string, hdr map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func loginCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/admin/login", `{"password":"s3cret"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "admin_session" {
			return ck
		}
	}
	t.Fatal("admin_session cookie missing")
	return nil
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatal("prometheus exposition missing")
	}
}

func TestRouter_NoRouteEnvelope(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/no/such/route", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["code"] != "not_found" {
		t.Fatalf("body=%v", body)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/track", "", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want 405", w.Code)
	}
}

func TestRouter_TrackPersistsVisitor(t *testing.T) {
	r, db, _ := newTestServer(t)

	hdr := map[string]string{
		"X-Forwarded-For": "203.0.113.9",
		"User-Agent":      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)",
	}
	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/track", "", hdr)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d: %s", w.Code, w.Body.String())
		}
	}

	var v domain.Visitor
	if err := db.First(&v, "ip_address = ?", "203.0.113.9").Error; err != nil {
		t.Fatalf("visitor not stored: %v", err)
	}
	if v.VisitCount != 2 || v.DeviceType != domain.DeviceIPhone || v.City != "Vilnius" {
		t.Fatalf("visitor row: %+v", v)
	}
}

func TestRouter_ContactPersistsAndDedupes(t *testing.T) {
	r, db, _ := newTestServer(t)

	hdr := map[string]string{
		"X-Forwarded-For": "203.0.113.9",
		"Idempotency-Key": "form-retry-1",
	}
	body := `{"email":"jonas@example.lt","message":"labas"}`

	for i := 0; i < 3; i++ {
		w := do(r, http.MethodPost, "/contact", body, hdr)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status=%d body=%s", i, w.Code, w.Body.String())
		}
	}

	var n int64
	if err := db.Model(&domain.Submission{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("retries with the same key must store one row, got %d", n)
	}
}

func TestRouter_ContactInvalidEmail(t *testing.T) {
	r, db, _ := newTestServer(t)

	w := do(r, http.MethodPost, "/contact", `{"email":"no-at-sign"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var n int64
	db.Model(&domain.Submission{}).Count(&n)
	if n != 0 {
		t.Fatalf("invalid email must not be stored")
	}
}

func TestRouter_AdminRequiresSession(t *testing.T) {
	r, _, _ := newTestServer(t)

	for _, path := range []string{"/admin/visitors", "/admin/submissions", "/admin/export"} {
		w := do(r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status=%d, want 401", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error":"Unauthorized"`) {
			t.Fatalf("%s: body=%s", path, w.Body.String())
		}
	}
}

func TestRouter_AdminFlow(t *testing.T) {
	r, _, _ := newTestServer(t)

	// Seed one visit and one submission through the public API.
	do(r, http.MethodPost, "/track", "", map[string]string{"X-Forwarded-For": "203.0.113.9"})
	do(r, http.MethodPost, "/contact", `{"email":"a@b.lt"}`, nil)

	ck := loginCookie(t, r)

	w := do(r, http.MethodGet, "/admin/visitors", "", nil, ck)
	if w.Code != http.StatusOK {
		t.Fatalf("visitors: %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "203.0.113.9") {
		t.Fatalf("visitors body=%s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/admin/submissions", "", nil, ck)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "a@b.lt") {
		t.Fatalf("submissions: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/admin/export", "", nil, ck)
	if w.Code != http.StatusOK {
		t.Fatalf("export: %d", w.Code)
	}
	if w.Header().Get("Content-Disposition") != `attachment; filename="submissions.csv"` {
		t.Fatalf("disposition=%q", w.Header().Get("Content-Disposition"))
	}
}

func TestRouter_LogoutInvalidatesSession(t *testing.T) {
	r, _, _ := newTestServer(t)
	ck := loginCookie(t, r)

	if w := do(r, http.MethodPost, "/admin/logout", "", nil, ck); w.Code != http.StatusNoContent {
		t.Fatalf("logout: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/admin/visitors", "", nil, ck); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked cookie must be rejected, got %d", w.Code)
	}
}

func TestRouter_WrongPassword(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodPost, "/admin/login", `{"password":"wrong"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestRouter_CORSWildcardDefault(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := do(r, http.MethodGet, "/health", "", nil)
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("ACAO=%q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
