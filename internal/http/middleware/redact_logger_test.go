package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureLogs swaps the global zerolog writer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func redactRouter(opts RedactOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RedactingLogger(opts))
	r.POST("/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRedactingLogger_ScrubsEmailAndPhoneFromQuery(t *testing.T) {
	buf := captureLogs(t)
	r := redactRouter(RedactOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact?email=jonas@example.lt&tel=%2B37060000000", nil)
	r.ServeHTTP(w, req)

	out := buf.String()
	if strings.Contains(out, "jonas@example.lt") {
		t.Fatalf("email leaked to log: %s", out)
	}
	if strings.Contains(out, "37060000000") {
		t.Fatalf("phone leaked to log: %s", out)
	}
	if !strings.Contains(out, "[REDACTED:email]") {
		t.Fatalf("email placeholder missing: %s", out)
	}
}

func TestRedactingLogger_MasksSessionCookie(t *testing.T) {
	buf := captureLogs(t)
	r := redactRouter(RedactOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "super-secret-token"})
	r.ServeHTTP(w, req)

	out := buf.String()
	if strings.Contains(out, "super-secret-token") {
		t.Fatalf("session token leaked to log: %s", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Fatalf("cookie header not masked: %s", out)
	}
}

func TestRedactingLogger_MasksCustomHeaders(t *testing.T) {
	buf := captureLogs(t)
	r := redactRouter(RedactOptions{MaskHeaders: []string{"X-Api-Key"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("X-Api-Key", "top-secret")
	r.ServeHTTP(w, req)

	if strings.Contains(buf.String(), "top-secret") {
		t.Fatalf("custom header leaked: %s", buf.String())
	}
}

func TestRedactingLogger_ScrubsTokensInHeaders(t *testing.T) {
	buf := captureLogs(t)
	r := redactRouter(RedactOptions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.Header.Set("X-Debug-Session", "141add05-4415-4938-b5a1-17e0d3171aff")
	r.ServeHTTP(w, req)

	out := buf.String()
	if strings.Contains(out, "141add05-4415-4938-b5a1-17e0d3171aff") {
		t.Fatalf("token leaked: %s", out)
	}
	if !strings.Contains(out, "[REDACTED:token]") {
		t.Fatalf("token placeholder missing: %s", out)
	}
}
