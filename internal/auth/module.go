// Package auth provides the admin authentication module.
package auth

import (
	"cleanquote_backend/internal/auth/handler"
	"cleanquote_backend/internal/auth/service"
	apphttp "cleanquote_backend/internal/http"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/logger"
	"cleanquote_backend/platform/validator"
)

// Module represents the auth domain module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new auth module with all dependencies wired.
func NewModule(cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(cfg, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Login sits on the public group behind the stricter auth limiter.
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
