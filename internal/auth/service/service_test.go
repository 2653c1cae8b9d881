package service

import (
	"testing"
	"time"

	"cleanquote_backend/platform/apperr"
	"cleanquote_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type testAuthConfig struct {
	email string
	hash  string
}

func (c testAuthConfig) GetJWTAccessSecret() string        { return "test-secret" }
func (c testAuthConfig) GetAccessTokenTTL() time.Duration  { return 12 * time.Hour }
func (c testAuthConfig) GetAdminEmail() string             { return c.email }
func (c testAuthConfig) GetAdminPasswordHash() string      { return c.hash }

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg := testAuthConfig{email: "admin@example.com", hash: string(hash)}
	return New(cfg, logger.New("development"))
}

func TestLoginIssuesAccessToken(t *testing.T) {
	svc := newTestService(t, "correct horse battery")

	token, ttl, err := svc.Login("Admin@Example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if ttl != 12*time.Hour {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "admin@example.com" || claims["type"] != "access" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService(t, "correct horse battery")

	_, _, err := svc.Login("admin@example.com", "wrong")
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newTestService(t, "correct horse battery")

	_, _, err := svc.Login("intruder@example.com", "correct horse battery")
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
