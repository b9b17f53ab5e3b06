package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

type EvidenceHandler struct {
	svc *service.EvidenceService
}

func NewEvidenceHandler(svc *service.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{svc: svc}
}

// Review godoc
// @Summary Cross-check collected evidence against the incident description
// @Tags evidence
// @Accept json
// @Produce json
// @Param request body model.EvidenceReviewRequest true "Evidence review payload"
// @Success 200 {object} model.EvidenceReviewResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/evidence/review [post]
func (h *EvidenceHandler) Review(c *gin.Context) {
	var req model.EvidenceReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing incident description"})
		return
	}

	res, err := h.svc.Review(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
