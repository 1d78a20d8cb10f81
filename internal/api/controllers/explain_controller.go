package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"monumentscout/internal/models/request_models"
	"monumentscout/internal/services"
	"monumentscout/pkg/utils"
)

type ExplainController struct {
	explainService services.ExplainServiceInterface
}

func NewExplainController(explainService services.ExplainServiceInterface) *ExplainController {
	return &ExplainController{
		explainService: explainService,
	}
}

// POST /api/explain
func (e *ExplainController) ExplainHandler(c *gin.Context) {
	var req request_models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs), errors.Is(err, io.EOF):
			// an empty body is treated like an object without a name
			utils.HandleServiceError(c, utils.ErrMissingMonumentName)
		default:
			utils.HandleServiceError(c, utils.ErrInvalidRequestBody)
		}
		return
	}

	explanation, err := e.explainService.Explain(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, explanation)
}
