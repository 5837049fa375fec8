package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope for every failed request.
type ErrorBody struct {
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// MessageBody carries a plain informational message instead of an error.
type MessageBody struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Success writes data as the JSON body.
func Success(ctx *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

// Error writes the error envelope and aborts the handler chain.
func Error(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, ErrorBody{
		Error:     message,
		Details:   details,
		RequestID: ctx.GetString("request_id"),
	})
}

// Message writes {message} and aborts the handler chain.
func Message(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, MessageBody{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
	})
}
