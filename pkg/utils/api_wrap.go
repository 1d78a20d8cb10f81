package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service errors to their fixed client messages.
// Upstream details are logged by the services and never reach the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCoordinates):
		RespondError(c, http.StatusBadRequest, "Missing latitude or longitude")
	case errors.Is(err, ErrInvalidCoordinates):
		RespondError(c, http.StatusBadRequest, "Invalid latitude or longitude")
	case errors.Is(err, ErrMissingMonumentName):
		RespondError(c, http.StatusBadRequest, "Missing monument name")
	case errors.Is(err, ErrInvalidRequestBody):
		RespondError(c, http.StatusBadRequest, "Invalid request body")
	case errors.Is(err, ErrAIServiceNotConfigured):
		credential := "OPENROUTER_API_KEY"
		var nc *NotConfiguredError
		if errors.As(err, &nc) && nc.Credential != "" {
			credential = nc.Credential
		}
		RespondError(c, http.StatusInternalServerError,
			fmt.Sprintf("AI service not configured. Please add %s to environment variables.", credential))
	case errors.Is(err, ErrLocationFetchFailed):
		RespondError(c, http.StatusInternalServerError, "Failed to fetch location data")
	case errors.Is(err, ErrExplanationFailed):
		RespondError(c, http.StatusInternalServerError, "Failed to generate explanation. Please try again later.")
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
