package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/domain"
	"github.com/autokursai/landing-api/internal/http/middleware"
	"github.com/autokursai/landing-api/internal/repo"
	"github.com/autokursai/landing-api/internal/services"
)

func newAdminRouter(auth stubAuthSvc, dash stubDashSvc, cookie CookieOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubTrackSvc{}, stubContactSvc{}, auth, dash, cookie)
	r := gin.New()
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
	r.GET("/admin/visitors", h.Visitors)
	r.GET("/admin/submissions", h.Submissions)
	r.GET("/admin/export", h.Export)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}

func TestLogin_WrongPassword401(t *testing.T) {
	auth := stubAuthSvc{login: func(password string) (string, error) {
		return "", services.ErrBadPassword
	}}
	r := newAdminRouter(auth, stubDashSvc{}, CookieOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"password":"nope"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeUnauthorized || er.Error != "Neteisingas slaptažodis" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
	if sessionCookie(t, w) != nil {
		t.Fatal("no cookie must be issued on failed login")
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	auth := stubAuthSvc{login: func(password string) (string, error) {
		if password != "s3cret" {
			t.Fatalf("password passthrough broken: %q", password)
		}
		return "tok-123", nil
	}}
	r := newAdminRouter(auth, stubDashSvc{}, CookieOptions{Secure: true, TTL: 24 * time.Hour})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"password":"s3cret"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	ck := sessionCookie(t, w)
	if ck == nil {
		t.Fatal("session cookie missing")
	}
	if ck.Value != "tok-123" {
		t.Fatalf("cookie value=%q", ck.Value)
	}
	if !ck.HttpOnly || !ck.Secure || ck.Path != "/" {
		t.Fatalf("cookie attributes wrong: %+v", ck)
	}
	if ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("SameSite=%v, want Strict", ck.SameSite)
	}
	if ck.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("MaxAge=%d, want 86400", ck.MaxAge)
	}
}

func TestLogin_ServiceError500(t *testing.T) {
	auth := stubAuthSvc{login: func(string) (string, error) {
		return "", errors.New("store broken")
	}}
	r := newAdminRouter(auth, stubDashSvc{}, CookieOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"password":"x"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	var revoked string
	auth := stubAuthSvc{logout: func(token string) { revoked = token }}
	r := newAdminRouter(auth, stubDashSvc{}, CookieOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-123"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", w.Code)
	}
	if revoked != "tok-123" {
		t.Fatalf("revoked=%q, want tok-123", revoked)
	}
	ck := sessionCookie(t, w)
	if ck == nil {
		t.Fatal("expected clearing Set-Cookie")
	}
	if ck.Value != "" || ck.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: value=%q maxAge=%d", ck.Value, ck.MaxAge)
	}
}

func TestLogout_NoCookieStillSucceeds(t *testing.T) {
	auth := stubAuthSvc{logout: func(string) { t.Fatal("nothing to revoke") }}
	r := newAdminRouter(auth, stubDashSvc{}, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", w.Code)
	}
}

func TestVisitors_Success(t *testing.T) {
	dash := stubDashSvc{overview: func(ctx context.Context) ([]domain.Visitor, repo.Stats, error) {
		return []domain.Visitor{{ID: 1, IPAddress: "203.0.113.9", DeviceType: domain.DeviceIPhone, City: "Vilnius", VisitCount: 3}},
			repo.Stats{TotalUnique: 1, TotalVisits: 3, TodayVisitors: 1}, nil
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/visitors", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200. body=%s", w.Code, w.Body.String())
	}
	var resp VisitorsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Visitors) != 1 || resp.Visitors[0].City != "Vilnius" {
		t.Fatalf("visitors mismatch: %+v", resp.Visitors)
	}
	if resp.Stats.TotalVisits != 3 {
		t.Fatalf("stats mismatch: %+v", resp.Stats)
	}
	// The dashboard counts ride on these exact JSON keys.
	for _, key := range []string{`"totalUnique"`, `"totalVisits"`, `"todayVisitors"`} {
		if !strings.Contains(w.Body.String(), key) {
			t.Fatalf("body missing %s: %s", key, w.Body.String())
		}
	}
}

func TestVisitors_Error500(t *testing.T) {
	dash := stubDashSvc{overview: func(ctx context.Context) ([]domain.Visitor, repo.Stats, error) {
		return nil, repo.Stats{}, errors.New("db down")
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/visitors", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Error != "Klaida gaunant lankytojų duomenis" {
		t.Fatalf("message=%q", er.Error)
	}
}

func TestSubmissions_Success(t *testing.T) {
	phone := "+37060000000"
	dash := stubDashSvc{submissions: func(ctx context.Context) ([]domain.Submission, error) {
		return []domain.Submission{{ID: 1, Email: "a@b.lt", Phone: &phone}}, nil
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/submissions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var resp SubmissionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Submissions) != 1 || resp.Submissions[0].Email != "a@b.lt" {
		t.Fatalf("submissions mismatch: %+v", resp.Submissions)
	}
}

func TestSubmissions_Error500(t *testing.T) {
	dash := stubDashSvc{submissions: func(ctx context.Context) ([]domain.Submission, error) {
		return nil, errors.New("db down")
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/submissions", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
}

func TestExport_CSVDownload(t *testing.T) {
	dash := stubDashSvc{export: func(ctx context.Context) (string, error) {
		return "ID,Email\n1,a@b.lt", nil
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("Content-Type=%q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="submissions.csv"` {
		t.Fatalf("Content-Disposition=%q", cd)
	}
	if w.Body.String() != "ID,Email\n1,a@b.lt" {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestExport_Error500(t *testing.T) {
	dash := stubDashSvc{export: func(ctx context.Context) (string, error) {
		return "", errors.New("db down")
	}}
	r := newAdminRouter(stubAuthSvc{}, dash, CookieOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/export", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeExportFailed {
		t.Fatalf("code=%q", er.Code)
	}
}
