package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

type WitnessHandler struct {
	svc *service.WitnessService
}

func NewWitnessHandler(svc *service.WitnessService) *WitnessHandler {
	return &WitnessHandler{svc: svc}
}

// Analyze godoc
// @Summary Analyze an uploaded witness statement (image, PDF or plain text)
// @Tags witness-statements
// @Accept json
// @Produce json
// @Param request body model.WitnessAnalysisRequest true "Witness statement payload"
// @Success 200 {object} model.WitnessAnalysis
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/witness-statements/analyze [post]
func (h *WitnessHandler) Analyze(c *gin.Context) {
	var req model.WitnessAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.File == nil || req.File.Content == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing file data"})
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
