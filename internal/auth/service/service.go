// Package service implements admin sign-in for the single operator account
// configured through the environment.
package service

import (
	"crypto/subtle"
	"strings"
	"time"

	"cleanquote_backend/platform/apperr"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenType = "access"

// Service verifies admin credentials and issues access tokens.
type Service struct {
	cfg config.AuthServiceConfig
	log *logger.Logger
}

// New creates a new auth service.
func New(cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// Login checks the credentials against the configured admin account and
// returns a signed access token with its lifetime.
func (s *Service) Login(email, password string) (string, time.Duration, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(s.cfg.GetAdminEmail()))) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(password))
	if !emailMatch || passwordErr != nil {
		s.log.AuthEvent("login", email, false, "invalid credentials")
		return "", 0, apperr.Unauthorized("invalid credentials")
	}

	ttl := s.cfg.GetAccessTokenTTL()
	token, err := s.signJWT(email, ttl)
	if err != nil {
		return "", 0, apperr.Wrap(apperr.KindInternal, "failed to issue token", err).WithOp("auth.Login")
	}

	s.log.AuthEvent("login", email, true, "")
	return token, ttl, nil
}

func (s *Service) signJWT(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"type": accessTokenType,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
