package handlers

import (
	"net/http"

	"watchbill-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// QualHandler handles HTTP requests for the qual catalogue
type QualHandler struct {
	qualService service.QualServiceInterface
}

// NewQualHandler creates a new qual handler
func NewQualHandler(qualService service.QualServiceInterface) *QualHandler {
	return &QualHandler{
		qualService: qualService,
	}
}

// ListQuals handles GET /admin/quals
// @Summary List quals
// @Description Qualification catalogue in name order
// @Tags quals
// @Produce json
// @Success 200 {array} service.QualResponse "Quals"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/quals [get]
func (h *QualHandler) ListQuals(c *gin.Context) {
	quals, err := h.qualService.List()
	if err != nil {
		respondError(c, err, "Failed to get quals")
		return
	}

	c.JSON(http.StatusOK, quals)
}
