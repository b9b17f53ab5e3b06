// 오류 분류 → HTTP 상태/응답 shape 매핑
//
//   - ValidationError → 400
//   - TemplateError   → 500 (placeholder 목록 포함, 생성 오류와 구분되는 shape)
//   - 그 외 (Invocation/Parse) → 500

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/model"
)

func writeError(c *gin.Context, err error) {
	if templateErr, ok := apperr.AsTemplateError(err); ok {
		c.JSON(http.StatusInternalServerError, model.TemplateErrorResponse{
			Error:        templateErr.Error(),
			Placeholders: templateErr.Placeholders,
		})
		return
	}
	if errors.Is(err, apperr.ErrValidation) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
}
