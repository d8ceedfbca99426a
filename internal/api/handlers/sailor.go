package handlers

import (
	"net/http"

	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// SailorHandler handles HTTP requests for the sailor admin
type SailorHandler struct {
	sailorService service.SailorServiceInterface
}

// NewSailorHandler creates a new sailor handler
func NewSailorHandler(sailorService service.SailorServiceInterface) *SailorHandler {
	return &SailorHandler{
		sailorService: sailorService,
	}
}

// ListSailors handles GET /admin/sailors
// @Summary Sailor change list
// @Description Filtered, ordered and paged sailor list with computed columns and sidebar filter choices
// @Tags sailors
// @Produce json
// @Param qual query string false "Qualification ID, or _all"
// @Param quald query string false "Qualified: 1 yes, 0 no"
// @Param active__exact query string false "Active: 1 yes (default), 0 no, _all"
// @Param dept query string false "Department"
// @Param report__isempty query string false "Coversheet: 0 present, 1 absent"
// @Param o query string false "Ordering: name, rate, qualdate, watch_count; prefix - for descending"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Rows per page" default(100)
// @Success 200 {object} admin.ChangeList "Change list page"
// @Failure 400 {object} ErrorResponse "Invalid filter or ordering"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/sailors [get]
func (h *SailorHandler) ListSailors(c *gin.Context) {
	params := admin.ParseListParams(c.Request.URL.Query())

	changeList, err := h.sailorService.ChangeList(params)
	if err != nil {
		respondError(c, err, "Failed to list sailors")
		return
	}

	c.JSON(http.StatusOK, changeList)
}

// GetLayout handles GET /admin/sailors/layout
// @Summary Sailor admin layout
// @Description List columns, filters, actions, form fieldsets and export header of the sailor admin
// @Tags sailors
// @Produce json
// @Success 200 {object} admin.Layout "Admin layout"
// @Security BearerAuth
// @Router /admin/sailors/layout [get]
func (h *SailorHandler) GetLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.sailorService.Layout())
}

// GetSailor handles GET /admin/sailors/:id
// @Summary Get sailor
// @Description Sailor detail form with inline watch events
// @Tags sailors
// @Produce json
// @Param id path string true "Sailor ID (UUID)"
// @Success 200 {object} service.SailorResponse "Sailor"
// @Failure 400 {object} ErrorResponse "Invalid sailor ID"
// @Failure 404 {object} ErrorResponse "Sailor not found"
// @Security BearerAuth
// @Router /admin/sailors/{id} [get]
func (h *SailorHandler) GetSailor(c *gin.Context) {
	id, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}

	sailor, err := h.sailorService.Get(id)
	if err != nil {
		respondError(c, err, "Failed to get sailor")
		return
	}

	c.JSON(http.StatusOK, sailor)
}

// CreateSailor handles POST /admin/sailors
// @Summary Create sailor
// @Tags sailors
// @Accept json
// @Produce json
// @Param sailor body service.CreateSailorRequest true "Sailor"
// @Success 201 {object} service.SailorResponse "Created sailor"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Qual not found"
// @Security BearerAuth
// @Router /admin/sailors [post]
func (h *SailorHandler) CreateSailor(c *gin.Context) {
	var req service.CreateSailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sailor, err := h.sailorService.Create(&req)
	if err != nil {
		respondError(c, err, "Failed to create sailor")
		return
	}

	c.JSON(http.StatusCreated, sailor)
}

// UpdateSailor handles PUT /admin/sailors/:id
// @Summary Update sailor
// @Description Partial update; omitted fields keep their value
// @Tags sailors
// @Accept json
// @Produce json
// @Param id path string true "Sailor ID (UUID)"
// @Param sailor body service.UpdateSailorRequest true "Fields to change"
// @Success 200 {object} service.SailorResponse "Updated sailor"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Sailor or qual not found"
// @Security BearerAuth
// @Router /admin/sailors/{id} [put]
func (h *SailorHandler) UpdateSailor(c *gin.Context) {
	id, ok := parseID(c, "id", "sailor")
	if !ok {
		return
	}

	var req service.UpdateSailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sailor, err := h.sailorService.Update(id, &req)
	if err != nil {
		respondError(c, err, "Failed to update sailor")
		return
	}

	c.JSON(http.StatusOK, sailor)
}

// RunAction handles POST /admin/sailors/actions/:action
// @Summary Run bulk action
// @Description export answers with the WB_Roster.csv attachment; ack_jun marks notes and reports how many changed
// @Tags sailors
// @Accept json
// @Produce json
// @Produce text/csv
// @Param action path string true "Action name" Enums(export, ack_jun)
// @Param selection body service.ActionRequest true "Selected sailor IDs"
// @Success 200 {object} service.ActionResult "Action result"
// @Failure 400 {object} ErrorResponse "Unknown action or empty selection"
// @Security BearerAuth
// @Router /admin/sailors/actions/{action} [post]
func (h *SailorHandler) RunAction(c *gin.Context) {
	var req service.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sailorService.RunAction(c, c.Param("action"), &req)
	if err != nil {
		respondError(c, err, "Failed to run action")
		return
	}

	if result.CSV != nil {
		c.Header("Content-Disposition", "attachment; filename="+result.Filename)
		c.Data(http.StatusOK, "text/csv", result.CSV)
		return
	}

	c.JSON(http.StatusOK, result)
}
