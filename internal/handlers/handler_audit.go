package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// registerAuditRoutes registers the admin-only audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	rg.GET("/audit-events", middleware.RequireRole(string(domain.RoleAdmin)), h.listAuditEvents)
}

// listAuditEvents godoc
// @Summary List recent audit events
// @Description Returns the newest processing transitions first; admin only
// @Tags audit
// @Produce  json
// @Param   limit query int false "Maximum number of events (default 100)"
// @Success 200 {array} dto.AuditEventResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /audit-events [get]
func (h *auditHandler) listAuditEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	events, err := h.auditService.ListRecentEvents(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list audit events")
		return
	}

	resp := make([]dto.AuditEventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, dto.ToAuditEventResponse(event))
	}
	c.JSON(http.StatusOK, resp)
}
