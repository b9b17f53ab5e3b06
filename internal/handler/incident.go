package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

type IncidentHandler struct {
	svc *service.IncidentService
}

func NewIncidentHandler(svc *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{svc: svc}
}

// Analyze godoc
// @Summary Analyze a nursery incident narrative
// @Tags incidents
// @Accept json
// @Produce json
// @Param request body model.IncidentAnalysisRequest true "Incident payload"
// @Success 200 {object} model.IncidentAnalysis
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/incidents/analyze [post]
func (h *IncidentHandler) Analyze(c *gin.Context) {
	var req model.IncidentAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.IncidentData == nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing incident data"})
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
