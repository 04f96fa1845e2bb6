package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// periodHandler handles HTTP requests for payrolls, periods, and status reads.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

// registerPeriodRoutes registers routes related to payrolls and periods.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	payrolls := rg.Group("/payrolls")
	{
		payrolls.POST("", h.createPayroll)
		payrolls.POST("/:payrollID/periods", h.generatePeriods)
		payrolls.GET("/:payrollID/periods", h.listPeriods)
	}

	periods := rg.Group("/periods")
	{
		periods.GET("/:periodID", h.getPeriod)
		periods.GET("/:periodID/centers/:centerID/status", h.getStatus)
	}
}

// createPayroll godoc
// @Summary Create a payroll
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   payroll body dto.CreatePayrollRequest true "Payroll details"
// @Success 201 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown base currency"
// @Security BearerAuth
// @Router /payrolls [post]
func (h *periodHandler) createPayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	payroll, err := h.periodService.CreatePayroll(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create payroll")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayrollResponse(*payroll))
}

// generatePeriods godoc
// @Summary Generate a year's periods
// @Description Bulk-creates the twelve monthly periods of a calendar year; aborts entirely on any duplicate
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   payrollID path string true "Payroll ID"
// @Param   request body dto.GeneratePeriodsRequest true "Target year"
// @Success 201 {array} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Payroll not found"
// @Failure 409 {object} map[string]string "A period already exists for the year"
// @Security BearerAuth
// @Router /payrolls/{payrollID}/periods [post]
func (h *periodHandler) generatePeriods(c *gin.Context) {
	var req dto.GeneratePeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	periods, err := h.periodService.GeneratePeriods(c.Request.Context(), c.Param("payrollID"), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate periods")
		return
	}

	now := time.Now()
	resp := make([]dto.PeriodResponse, 0, len(periods))
	for _, period := range periods {
		resp = append(resp, dto.ToPeriodResponse(period, now))
	}
	c.JSON(http.StatusCreated, resp)
}

// listPeriods godoc
// @Summary List a payroll's periods
// @Tags periods
// @Produce  json
// @Param   payrollID path string true "Payroll ID"
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /payrolls/{payrollID}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriodsByPayroll(c.Request.Context(), c.Param("payrollID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list periods")
		return
	}

	now := time.Now()
	resp := make([]dto.PeriodResponse, 0, len(periods))
	for _, period := range periods {
		resp = append(resp, dto.ToPeriodResponse(period, now))
	}
	c.JSON(http.StatusOK, resp)
}

// getPeriod godoc
// @Summary Get an accounting period
// @Tags periods
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriodByID(c.Request.Context(), c.Param("periodID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(*period, time.Now()))
}

// getStatus godoc
// @Summary Get a center's processing status for a period
// @Description A pair that has never been run is reported as PENDING
// @Tags periods
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.StatusResponse
// @Security BearerAuth
// @Router /periods/{periodID}/centers/{centerID}/status [get]
func (h *periodHandler) getStatus(c *gin.Context) {
	periodID := c.Param("periodID")
	centerID := c.Param("centerID")

	status, err := h.periodService.GetStatus(c.Request.Context(), periodID, centerID)
	if err != nil {
		respondServiceError(c, err, "Failed to get status")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatusResponse(periodID, centerID, status))
}
