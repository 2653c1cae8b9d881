package handler

import (
	"net/http"

	"cleanquote_backend/internal/quotes/service"
	"cleanquote_backend/internal/quotes/transport"
	"cleanquote_backend/platform/httpkit"
	"cleanquote_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for quote requests.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new quotes handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers the submission routes used by the website.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/email", h.SubmitEmail)
	rg.POST("/whatsapp", h.SubmitWhatsApp)
}

// RegisterAdminRoutes registers the triage routes behind admin auth.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PATCH("/:id/status", h.UpdateStatus)
}

func (h *Handler) SubmitEmail(c *gin.Context) {
	var req transport.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.SubmitEmailQuote(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, result)
}

func (h *Handler) SubmitWhatsApp(c *gin.Context) {
	var req transport.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.SubmitWhatsAppQuote(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, result)
}

func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.ListQuotes(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.UpdateQuoteStatus(c.Request.Context(), id, transport.QuoteStatus(req.Status)); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"status": req.Status})
}
