// Package quotes provides the quote request domain module.
package quotes

import (
	"cleanquote_backend/internal/email"
	apphttp "cleanquote_backend/internal/http"
	"cleanquote_backend/internal/quotes/handler"
	"cleanquote_backend/internal/quotes/repository"
	"cleanquote_backend/internal/quotes/service"
	"cleanquote_backend/platform/config"
	"cleanquote_backend/platform/events"
	"cleanquote_backend/platform/logger"
	"cleanquote_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the quotes domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new quotes module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, sender email.Sender, business config.BusinessConfig, eventBus *events.InMemoryBus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, sender, business, val, eventBus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public submission routes — no auth middleware.
	m.handler.RegisterPublicRoutes(ctx.V1.Group("/quotes"))

	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/quotes"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
