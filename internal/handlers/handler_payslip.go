package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// payslipHandler handles payslip reads and lifecycle transitions.
type payslipHandler struct {
	payslipService portssvc.PayslipSvcFacade
}

func newPayslipHandler(payslipService portssvc.PayslipSvcFacade) *payslipHandler {
	return &payslipHandler{payslipService: payslipService}
}

// registerPayslipRoutes registers routes related to payslips.
func registerPayslipRoutes(rg *gin.RouterGroup, payslipService portssvc.PayslipSvcFacade) {
	h := newPayslipHandler(payslipService)

	payslips := rg.Group("/payslips")
	{
		payslips.GET("/:payslipID", h.getPayslip)
		payslips.POST("/:payslipID/distribute", h.distributePayslip)
		payslips.POST("/:payslipID/cancel", h.cancelPayslip)
		payslips.DELETE("/:payslipID", h.deletePayslip)
	}

	rg.GET("/periods/:periodID/centers/:centerID/payslips", h.listPayslips)
}

// getPayslip godoc
// @Summary Get a payslip with its line items
// @Tags payslips
// @Produce  json
// @Param   payslipID path string true "Payslip ID"
// @Success 200 {object} dto.PayslipResponse
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payslips/{payslipID} [get]
func (h *payslipHandler) getPayslip(c *gin.Context) {
	payslip, err := h.payslipService.GetPayslipByID(c.Request.Context(), c.Param("payslipID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get payslip")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayslipResponse(*payslip))
}

// listPayslips godoc
// @Summary List payslips for a period and center
// @Tags payslips
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {array} dto.PayslipResponse
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/payslips [get]
func (h *payslipHandler) listPayslips(c *gin.Context) {
	payslips, err := h.payslipService.ListPayslipsByPeriodCenter(c.Request.Context(), c.Param("periodID"), c.Param("centerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list payslips")
		return
	}

	resp := make([]dto.PayslipResponse, 0, len(payslips))
	for _, payslip := range payslips {
		resp = append(resp, dto.ToPayslipResponse(payslip))
	}
	c.JSON(http.StatusOK, resp)
}

// distributePayslip godoc
// @Summary Distribute a finalized payslip
// @Tags payslips
// @Param   payslipID path string true "Payslip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Payslip is not finalized"
// @Security BearerAuth
// @Router /payslips/{payslipID}/distribute [post]
func (h *payslipHandler) distributePayslip(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	if err := h.payslipService.DistributePayslip(c.Request.Context(), c.Param("payslipID"), actorID); err != nil {
		respondServiceError(c, err, "Failed to distribute payslip")
		return
	}
	c.Status(http.StatusNoContent)
}

// cancelPayslip godoc
// @Summary Cancel a payslip
// @Description Blocked once the payslip is distributed
// @Tags payslips
// @Param   payslipID path string true "Payslip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Payslip cannot be cancelled"
// @Security BearerAuth
// @Router /payslips/{payslipID}/cancel [post]
func (h *payslipHandler) cancelPayslip(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	if err := h.payslipService.CancelPayslip(c.Request.Context(), c.Param("payslipID"), actorID); err != nil {
		respondServiceError(c, err, "Failed to cancel payslip")
		return
	}
	c.Status(http.StatusNoContent)
}

// deletePayslip godoc
// @Summary Delete a payslip
// @Description Removes the payslip and its line items; blocked once distributed
// @Tags payslips
// @Param   payslipID path string true "Payslip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Payslip cannot be deleted"
// @Failure 404 {object} map[string]string "Payslip not found"
// @Security BearerAuth
// @Router /payslips/{payslipID} [delete]
func (h *payslipHandler) deletePayslip(c *gin.Context) {
	actorID, ok := mustActorID(c)
	if !ok {
		return
	}

	if err := h.payslipService.DeletePayslip(c.Request.Context(), c.Param("payslipID"), actorID); err != nil {
		respondServiceError(c, err, "Failed to delete payslip")
		return
	}
	c.Status(http.StatusNoContent)
}
