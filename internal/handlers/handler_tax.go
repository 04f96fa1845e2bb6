package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// taxHandler handles HTTP requests for tax bands, credits, and standalone
// tax computations.
type taxHandler struct {
	taxService      portssvc.TaxSvcFacade
	employeeService portssvc.EmployeeSvcFacade
}

func newTaxHandler(taxService portssvc.TaxSvcFacade, employeeService portssvc.EmployeeSvcFacade) *taxHandler {
	return &taxHandler{
		taxService:      taxService,
		employeeService: employeeService,
	}
}

// registerTaxRoutes registers routes related to tax configuration and calculation.
func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade, employeeService portssvc.EmployeeSvcFacade) {
	h := newTaxHandler(taxService, employeeService)

	bands := rg.Group("/tax-bands")
	{
		bands.POST("", h.createTaxBand)
		bands.GET("", h.listTaxBands)
		bands.PUT("/:bandID", h.updateTaxBand)
		bands.DELETE("/:bandID", h.deleteTaxBand)
	}

	credits := rg.Group("/tax-credits")
	{
		credits.POST("", h.createTaxCredit)
		credits.GET("", h.listTaxCredits)
	}

	rg.POST("/tax/calculate", h.calculateTax)
}

// createTaxBand godoc
// @Summary Create a tax band
// @Description Inserts a band after validating its range against siblings of the same currency and granularity
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   band body dto.CreateTaxBandRequest true "Band details"
// @Success 201 {object} dto.TaxBandResponse
// @Failure 400 {object} map[string]string "Invalid input or overlapping range"
// @Security BearerAuth
// @Router /tax-bands [post]
func (h *taxHandler) createTaxBand(c *gin.Context) {
	var req dto.CreateTaxBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	band, err := h.taxService.CreateTaxBand(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create tax band")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaxBandResponse(*band))
}

// listTaxBands godoc
// @Summary List the bands of one logical table
// @Tags tax
// @Produce  json
// @Param   currency query string true "Currency (USD or ZWL)"
// @Param   granularity query string true "Granularity (MONTHLY or ANNUAL)"
// @Success 200 {array} dto.TaxBandResponse
// @Failure 400 {object} map[string]string "Unsupported table key"
// @Security BearerAuth
// @Router /tax-bands [get]
func (h *taxHandler) listTaxBands(c *gin.Context) {
	key := domain.BandTableKey{
		Currency:    c.Query("currency"),
		Granularity: domain.TaxGranularity(c.Query("granularity")),
	}

	bands, err := h.taxService.ListTaxBands(c.Request.Context(), key)
	if err != nil {
		respondServiceError(c, err, "Failed to list tax bands")
		return
	}

	resp := make([]dto.TaxBandResponse, 0, len(bands))
	for _, band := range bands {
		resp = append(resp, dto.ToTaxBandResponse(band))
	}
	c.JSON(http.StatusOK, resp)
}

// updateTaxBand godoc
// @Summary Update a tax band
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   bandID path string true "Band ID"
// @Param   band body dto.UpdateTaxBandRequest true "Band details"
// @Success 200 {object} dto.TaxBandResponse
// @Failure 400 {object} map[string]string "Invalid input or overlapping range"
// @Failure 404 {object} map[string]string "Band not found"
// @Security BearerAuth
// @Router /tax-bands/{bandID} [put]
func (h *taxHandler) updateTaxBand(c *gin.Context) {
	var req dto.UpdateTaxBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	band, err := h.taxService.UpdateTaxBand(c.Request.Context(), c.Param("bandID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update tax band")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxBandResponse(*band))
}

// deleteTaxBand godoc
// @Summary Delete a tax band
// @Tags tax
// @Param   bandID path string true "Band ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Band not found"
// @Security BearerAuth
// @Router /tax-bands/{bandID} [delete]
func (h *taxHandler) deleteTaxBand(c *gin.Context) {
	if err := h.taxService.DeleteTaxBand(c.Request.Context(), c.Param("bandID")); err != nil {
		respondServiceError(c, err, "Failed to delete tax band")
		return
	}
	c.Status(http.StatusNoContent)
}

// createTaxCredit godoc
// @Summary Create a tax credit
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   credit body dto.CreateTaxCreditRequest true "Credit details"
// @Success 201 {object} dto.TaxCreditResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /tax-credits [post]
func (h *taxHandler) createTaxCredit(c *gin.Context) {
	var req dto.CreateTaxCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	credit, err := h.taxService.CreateTaxCredit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create tax credit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaxCreditResponse(*credit))
}

// listTaxCredits godoc
// @Summary List all tax credits
// @Tags tax
// @Produce  json
// @Success 200 {array} dto.TaxCreditResponse
// @Security BearerAuth
// @Router /tax-credits [get]
func (h *taxHandler) listTaxCredits(c *gin.Context) {
	credits, err := h.taxService.ListTaxCredits(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list tax credits")
		return
	}

	resp := make([]dto.TaxCreditResponse, 0, len(credits))
	for _, credit := range credits {
		resp = append(resp, dto.ToTaxCreditResponse(credit))
	}
	c.JSON(http.StatusOK, resp)
}

// calculateTax godoc
// @Summary Compute tax for one employee
// @Description Runs the progressive calculator and returns the full breakdown without persisting anything
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateTaxRequest true "Computation request"
// @Success 200 {object} dto.TaxComputationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /tax/calculate [post]
func (h *taxHandler) calculateTax(c *gin.Context) {
	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), req.EmployeeID)
	if err != nil {
		respondServiceError(c, err, "Failed to find employee")
		return
	}

	computation, err := h.taxService.CalculateTax(c.Request.Context(), *employee, req.Gross, req.Currency, domain.TaxGranularity(req.Granularity))
	if err != nil {
		respondServiceError(c, err, "Failed to calculate tax")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxComputationResponse(*computation))
}
