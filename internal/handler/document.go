// 문서 생성 핸들러: 평가 레코드를 .docx 바이너리로 반환 (attachment)

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Generate godoc
// @Summary Render a risk assessment record into a downloadable .docx file
// @Tags documents
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param request body model.DocumentGenerateRequest true "Document payload"
// @Success 200 {file} binary
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.TemplateErrorResponse
// @Router /api/v1/assessments/document [post]
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req model.DocumentGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Data) == 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "missing assessment data"})
		return
	}

	artifact, err := h.svc.Generate(req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
