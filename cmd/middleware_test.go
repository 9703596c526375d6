package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"lawmanBack/internal/config"
	"lawmanBack/internal/handlers"
)

func TestSecureHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	secureHeaders(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Frame-Options"); got != "deny" {
		t.Fatalf("expected X-Frame-Options deny, got %q", got)
	}
	if got := rec.Header().Get("X-XSS-Protection"); got != "1; mode=block" {
		t.Fatalf("expected X-XSS-Protection header, got %q", got)
	}
}

func TestLogRequestAssignsRequestID(t *testing.T) {
	ta := newTestApp(t)
	app := &application{logger: ta.logger}

	var withLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withLogger = zerolog.Ctx(r.Context()).GetLevel() != zerolog.Disabled
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	app.logRequest(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
	if !withLogger {
		t.Fatal("expected a request logger in the context")
	}
	logged := ta.logs.String()
	if !strings.Contains(logged, `"status":418`) || !strings.Contains(logged, `"uri":"/services"`) {
		t.Fatalf("unexpected request log %q", logged)
	}
}

func TestLogRequestKeepsIncomingRequestID(t *testing.T) {
	ta := newTestApp(t)
	app := &application{logger: ta.logger}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	app.logRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming request id, got %q", got)
	}
}

func TestRecoverPanic(t *testing.T) {
	ta := newTestApp(t)
	app := &application{logger: ta.logger}

	rec := httptest.NewRecorder()
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	app.recoverPanic(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Header().Get("Connection") != "close" {
		t.Fatal("expected Connection: close")
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error.") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if !strings.Contains(ta.logs.String(), "boom") {
		t.Fatalf("expected panic to be logged, got %q", ta.logs.String())
	}
}

func TestJWTMiddleware(t *testing.T) {
	ta := newTestApp(t)
	token, err := ta.tokens.NewJWT("u1")
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}
	app := &application{logger: ta.logger, cfg: config.Default(), tokens: ta.tokens}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = handlers.UserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("lawman-jwt", token)
	rec := httptest.NewRecorder()
	app.JWTMiddleware(next).ServeHTTP(rec, req)
	if got != "u1" {
		t.Fatalf("expected user u1 in context, got %q", got)
	}

	got = ""
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec = httptest.NewRecorder()
	app.JWTMiddleware(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized || got != "" {
		t.Fatalf("expected 401 for non-bearer authorization, got %d user %q", rec.Code, got)
	}
}
