package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/middleware"
)

// processingHandler drives the run/refresh/close/reopen state machine over HTTP.
type processingHandler struct {
	processingService portssvc.ProcessingSvcFacade
}

func newProcessingHandler(processingService portssvc.ProcessingSvcFacade) *processingHandler {
	return &processingHandler{processingService: processingService}
}

// registerProcessingRoutes registers the processing operations for a
// (period, center) pair.
func registerProcessingRoutes(rg *gin.RouterGroup, processingService portssvc.ProcessingSvcFacade) {
	h := newProcessingHandler(processingService)

	pair := rg.Group("/periods/:periodID/centers/:centerID")
	{
		pair.POST("/run", h.runPeriod)
		pair.POST("/refresh", h.refreshPeriod)
		pair.POST("/close", h.closePeriod)
		pair.POST("/reopen", h.reopenPeriod)
		pair.POST("/unconfirm", h.unconfirmPeriod)
	}
}

// bindRunRequest reads the currency mode payload shared by run and refresh.
func bindRunRequest(c *gin.Context) (domain.CurrencyMode, bool) {
	var req dto.RunPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return "", false
	}
	return domain.CurrencyMode(req.CurrencyMode), true
}

// runPeriod godoc
// @Summary Run a period for a cost center
// @Description Computes draft payslips for every active employee and advances the pair to PROCESSED
// @Tags processing
// @Accept  json
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Param   request body dto.RunPeriodRequest true "Currency mode"
// @Success 200 {object} dto.ProcessingResponse
// @Failure 403 {object} map[string]string "Actor may not process this center"
// @Failure 409 {object} map[string]string "Period already run or closed"
// @Failure 422 {object} map[string]string "No active employees"
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/run [post]
func (h *processingHandler) runPeriod(c *gin.Context) {
	mode, ok := bindRunRequest(c)
	if !ok {
		return
	}
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	count, err := h.processingService.RunPeriod(c.Request.Context(), periodID, centerID, mode, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to run period")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Run completed",
		slog.String("period_id", periodID), slog.String("center_id", centerID), slog.Int("payslips", count))
	c.JSON(http.StatusOK, dto.ProcessingResponse{
		PeriodID:      periodID,
		CenterID:      centerID,
		State:         string(domain.ProcessingProcessed),
		PayslipsCount: count,
	})
}

// refreshPeriod godoc
// @Summary Refresh a processed period
// @Description Recomputes the center's draft payslips in place; finalized payslips are untouched
// @Tags processing
// @Accept  json
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Param   request body dto.RunPeriodRequest true "Currency mode"
// @Success 200 {object} dto.ProcessingResponse
// @Failure 409 {object} map[string]string "Period not run or already closed"
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/refresh [post]
func (h *processingHandler) refreshPeriod(c *gin.Context) {
	mode, ok := bindRunRequest(c)
	if !ok {
		return
	}
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	count, err := h.processingService.RefreshPeriod(c.Request.Context(), periodID, centerID, mode, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh period")
		return
	}
	c.JSON(http.StatusOK, dto.ProcessingResponse{
		PeriodID:      periodID,
		CenterID:      centerID,
		State:         string(domain.ProcessingProcessed),
		PayslipsCount: count,
	})
}

// closePeriod godoc
// @Summary Close a processed period
// @Description Finalizes the center's draft payslips and advances the pair to CLOSED
// @Tags processing
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.ProcessingResponse
// @Failure 409 {object} map[string]string "Period not run or already closed"
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/close [post]
func (h *processingHandler) closePeriod(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	count, err := h.processingService.ClosePeriod(c.Request.Context(), periodID, centerID, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to close period")
		return
	}
	c.JSON(http.StatusOK, dto.ProcessingResponse{
		PeriodID:      periodID,
		CenterID:      centerID,
		State:         string(domain.ProcessingClosed),
		PayslipsCount: count,
	})
}

// reopenPeriod godoc
// @Summary Reopen a closed period
// @Description Rolls the pair back to PROCESSED; payslip statuses are not altered
// @Tags processing
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.ProcessingResponse
// @Failure 409 {object} map[string]string "Period is not closed"
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/reopen [post]
func (h *processingHandler) reopenPeriod(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	if err := h.processingService.ReopenPeriod(c.Request.Context(), periodID, centerID, actorID); err != nil {
		respondServiceError(c, err, "Failed to reopen period")
		return
	}
	c.JSON(http.StatusOK, dto.ProcessingResponse{
		PeriodID: periodID,
		CenterID: centerID,
		State:    string(domain.ProcessingProcessed),
	})
}

// unconfirmPeriod godoc
// @Summary Clear a period's close confirmation
// @Description Clears only the confirmation flag; the pair stays CLOSED
// @Tags processing
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.ProcessingResponse
// @Failure 409 {object} map[string]string "Close is not confirmed"
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/unconfirm [post]
func (h *processingHandler) unconfirmPeriod(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	if err := h.processingService.UnconfirmPeriod(c.Request.Context(), periodID, centerID, actorID); err != nil {
		respondServiceError(c, err, "Failed to unconfirm period")
		return
	}
	c.JSON(http.StatusOK, dto.ProcessingResponse{
		PeriodID: periodID,
		CenterID: centerID,
		State:    string(domain.ProcessingClosed),
	})
}
