package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
)

// centerHandler handles HTTP requests for cost centers, their rosters, and
// their currency splits.
type centerHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	splitService    portssvc.CurrencySplitSvcFacade
}

func newCenterHandler(employeeService portssvc.EmployeeSvcFacade, splitService portssvc.CurrencySplitSvcFacade) *centerHandler {
	return &centerHandler{
		employeeService: employeeService,
		splitService:    splitService,
	}
}

// registerCenterRoutes registers routes for centers, rosters, and splits.
func registerCenterRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, splitService portssvc.CurrencySplitSvcFacade) {
	h := newCenterHandler(employeeService, splitService)

	centers := rg.Group("/centers")
	{
		centers.GET("", h.listCenters)
		centers.GET("/:centerID", h.getCenter)
		centers.GET("/:centerID/employees", h.listActiveEmployees)
		centers.POST("/:centerID/splits", h.createSplit)
		centers.GET("/:centerID/splits", h.listSplits)
		centers.GET("/:centerID/splits/current", h.getCurrentSplit)
	}
}

// listCenters godoc
// @Summary List all cost centers
// @Tags centers
// @Produce  json
// @Success 200 {array} dto.CostCenterResponse
// @Security BearerAuth
// @Router /centers [get]
func (h *centerHandler) listCenters(c *gin.Context) {
	centers, err := h.employeeService.ListCenters(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list cost centers")
		return
	}

	resp := make([]dto.CostCenterResponse, 0, len(centers))
	for _, center := range centers {
		resp = append(resp, dto.ToCostCenterResponse(center))
	}
	c.JSON(http.StatusOK, resp)
}

// getCenter godoc
// @Summary Get a cost center
// @Tags centers
// @Produce  json
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} map[string]string "Cost center not found"
// @Security BearerAuth
// @Router /centers/{centerID} [get]
func (h *centerHandler) getCenter(c *gin.Context) {
	center, err := h.employeeService.GetCenterByID(c.Request.Context(), c.Param("centerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(*center))
}

// listActiveEmployees godoc
// @Summary List the center's active roster
// @Tags centers
// @Produce  json
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /centers/{centerID}/employees [get]
func (h *centerHandler) listActiveEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListActiveEmployeesByCenter(c.Request.Context(), c.Param("centerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list employees")
		return
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		resp = append(resp, dto.ToEmployeeResponse(employee))
	}
	c.JSON(http.StatusOK, resp)
}

// createSplit godoc
// @Summary Set a center's currency split
// @Description Creates a new split row; percentages must sum to 100
// @Tags centers
// @Accept  json
// @Produce  json
// @Param   centerID path string true "Cost Center ID"
// @Param   split body dto.CreateCurrencySplitRequest true "Split details"
// @Success 201 {object} dto.CurrencySplitResponse
// @Failure 400 {object} map[string]string "Invalid input format or percentages do not sum to 100"
// @Security BearerAuth
// @Router /centers/{centerID}/splits [post]
func (h *centerHandler) createSplit(c *gin.Context) {
	var req dto.CreateCurrencySplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := mustActorID(c)
	if !ok {
		return
	}

	split, err := h.splitService.CreateCurrencySplit(c.Request.Context(), c.Param("centerID"), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create currency split")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCurrencySplitResponse(*split))
}

// listSplits godoc
// @Summary List a center's split history
// @Tags centers
// @Produce  json
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {array} dto.CurrencySplitResponse
// @Security BearerAuth
// @Router /centers/{centerID}/splits [get]
func (h *centerHandler) listSplits(c *gin.Context) {
	splits, err := h.splitService.ListSplitsByCenter(c.Request.Context(), c.Param("centerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list currency splits")
		return
	}

	resp := make([]dto.CurrencySplitResponse, 0, len(splits))
	for _, split := range splits {
		resp = append(resp, dto.ToCurrencySplitResponse(split))
	}
	c.JSON(http.StatusOK, resp)
}

// getCurrentSplit godoc
// @Summary Get a center's effective split
// @Description Returns the configured split, or the 50/50 fallback when none exists
// @Tags centers
// @Produce  json
// @Param   centerID path string true "Cost Center ID"
// @Success 200 {object} dto.CurrencySplitResponse
// @Security BearerAuth
// @Router /centers/{centerID}/splits/current [get]
func (h *centerHandler) getCurrentSplit(c *gin.Context) {
	split, err := h.splitService.GetCurrentSplit(c.Request.Context(), c.Param("centerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to get currency split")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencySplitResponse(split))
}
