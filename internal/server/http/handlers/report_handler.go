package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/server/http/dto"
	"github.com/allmart/backoffice/internal/usecase"
)

// ReportHandler serves aggregated sales views.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Build handles GET /api/admin/reports. The window query parameter defaults
// to the trailing 30 days.
func (h *ReportHandler) Build(c *gin.Context) {
	value := c.DefaultQuery("window", string(model.ReportWindow30d))
	window, err := usecase.ParseWindow(value)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	report, err := h.facade.Report(c.Request.Context(), window)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.FromReport(*report))
}
