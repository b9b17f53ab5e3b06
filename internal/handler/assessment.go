// 위험성 평가 핸들러: hazard brainstorm / 전체 레코드 생성

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

type AssessmentHandler struct {
	svc *service.AssessmentService
}

func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// Brainstorm godoc
// @Summary Suggest additional hazards for an activity
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body model.HazardBrainstormRequest true "Brainstorm payload"
// @Success 200 {object} model.HazardSuggestions
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/assessments/brainstorm [post]
func (h *AssessmentHandler) Brainstorm(c *gin.Context) {
	var req model.HazardBrainstormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.ActivityName == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing activity name"})
		return
	}

	suggestions, err := h.svc.Brainstorm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// Generate godoc
// @Summary Generate a complete risk assessment record
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body model.AssessmentGenerateRequest true "Assessment payload"
// @Success 200 {object} model.AssessmentDocument
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/assessments/generate [post]
func (h *AssessmentHandler) Generate(c *gin.Context) {
	var req model.AssessmentGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.ActivityName == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing activity name"})
		return
	}
	if len(req.Hazards) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "at least one hazard is required"})
		return
	}

	doc, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
