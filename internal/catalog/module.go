package catalog

import (
	apphttp "cleanquote_backend/internal/http"
	"cleanquote_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module exposes the service catalog over HTTP.
type Module struct{}

// NewModule creates the catalog module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/services", m.listServices)
}

func (m *Module) listServices(c *gin.Context) {
	httpkit.OK(c, gin.H{"services": All()})
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
