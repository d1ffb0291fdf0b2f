package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"visitbook-go/internal/config"
	"visitbook-go/pkg/logger"
)

type fakeVerifier struct {
	users map[string]string
}

func (v *fakeVerifier) VerifyToken(ctx context.Context, userID, token string) (User, error) {
	stored, ok := v.users[userID]
	if !ok || stored != token {
		return User{}, errors.New("token rejected")
	}
	return User{ID: userID, Email: userID + "@example.com"}, nil
}

func newTestAuth(verifier TokenVerifier) *JWTAuth {
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}
	return NewJWTAuth(cfg, verifier, logger.New(io.Discard, slog.LevelError, "json"))
}

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatalf("expected user on context")
		}
		w.Write([]byte(user.ID))
	})
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	verifier := &fakeVerifier{users: map[string]string{}}
	auth := newTestAuth(verifier)

	token, err := auth.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	verifier.users["user-1"] = token

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(echoUser(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "user-1" {
		t.Fatalf("expected user-1 on context, got %q", rec.Body.String())
	}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	auth := newTestAuth(&fakeVerifier{users: map[string]string{}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run without a token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	verifier := &fakeVerifier{users: map[string]string{}}
	auth := newTestAuth(verifier)

	otherCfg := config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour}
	other := NewJWTAuth(otherCfg, verifier, logger.New(io.Discard, slog.LevelError, "json"))
	forged, err := other.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	verifier.users["user-1"] = forged

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run with a forged token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMiddlewareRejectsRevokedToken(t *testing.T) {
	verifier := &fakeVerifier{users: map[string]string{}}
	auth := newTestAuth(verifier)

	token, err := auth.IssueToken("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	// Token never stored by the verifier, as after logout.

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run with a revoked token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	if _, ok := bearerToken(""); ok {
		t.Fatalf("expected empty header rejected")
	}
	if _, ok := bearerToken("Basic abc"); ok {
		t.Fatalf("expected non-bearer scheme rejected")
	}
	token, ok := bearerToken("bearer abc")
	if !ok || token != "abc" {
		t.Fatalf("expected case-insensitive scheme, got %q %v", token, ok)
	}
}
