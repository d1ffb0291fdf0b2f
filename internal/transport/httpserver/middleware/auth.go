package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"visitbook-go/internal/config"
	"visitbook-go/pkg/logger"
)

// User is the caller identity placed on the request context once the
// bearer token checks out.
type User struct {
	ID       string
	Email    string
	FamilyID *string
	Role     *string
}

// TokenVerifier resolves the user for a token that already passed
// signature and expiry checks. It rejects tokens that were revoked by
// logout.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, userID, token string) (User, error)
}

type JWTAuth struct {
	secret   []byte
	tokenTTL time.Duration
	verifier TokenVerifier
	log      logger.Logger
}

type contextKey int

const userKey contextKey = iota

func NewJWTAuth(cfg config.AuthConfig, verifier TokenVerifier, log logger.Logger) *JWTAuth {
	return &JWTAuth{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		verifier: verifier,
		log:      log,
	}
}

// IssueToken mints a signed bearer token whose subject is the user id.
func (a *JWTAuth) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(a.secret) == 0 {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
		claims := &jwt.RegisteredClaims{}
		parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return a.secret, nil
		})
		if err != nil || !parsed.Valid || claims.Subject == "" {
			unauthorized(w)
			return
		}

		user, err := a.verifier.VerifyToken(r.Context(), claims.Subject, token)
		if err != nil {
			a.log.BusinessError("auth: token rejected", err, "user_id", claims.Subject)
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
