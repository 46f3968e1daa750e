package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"video-catalog-api/internal/utils/platformerrors"
)

// ErrorResponse is the error body returned to clients. The underlying cause
// never serializes; server-side detail stays in the logs.
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError classifies domain errors into HTTP responses. Client-caused
// errors (validation, not-found, conflict) surface their own message; server
// failures get the caller's generic message so internal detail never leaks.
func HandleError(c *gin.Context, log zerolog.Logger, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		platformerrors.LogError(log, platformErr)

		statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())
		body := ErrorResponse{
			Code:      platformErr.GetCode(),
			Error:     message,
			RequestID: platformErr.GetRequestID(),
		}
		if statusCode < http.StatusInternalServerError {
			body.Error = platformErr.Message
		}

		c.AbortWithStatusJSON(statusCode, body)
		return
	}

	log.Error().Err(err).Msg(message)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// HandleNewError creates a typed error at the route layer and handles it.
func HandleNewError(c *gin.Context, log zerolog.Logger, errorType platformerrors.ErrorType, message string, code string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, code)
	HandleError(c, log, err, message)
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
